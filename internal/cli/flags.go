package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/gostonefire/coursehashmap"
	"github.com/gostonefire/coursehashmap/internal/conf"
	"github.com/gostonefire/coursehashmap/internal/hash"
	"github.com/gostonefire/coursehashmap/policy"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func addPersistentFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().Int64("table-size", conf.DefaultTableSize, "number of buckets in the course table")
	cmd.PersistentFlags().String("hash", "course", "bucket algorithm, one of course or crc32")
	cmd.PersistentFlags().String("duplicates", policy.Replace.String(), "what to do with a repeated course id, one of replace, chain or reject")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
}

// configureLogging - Sends log output to the command's error stream, debug level if verbose was requested
func configureLogging(cmd *cobra.Command) (err error) {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return
	}

	log.SetOutput(cmd.ErrOrStderr())
	if verbose {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	return
}

// buildConf - Builds the catalog configuration from the persistent flags
func buildConf(cmd *cobra.Command) (catalogConf coursehashmap.Conf, err error) {
	tableSize, err := cmd.Flags().GetInt64("table-size")
	if err != nil {
		return
	}
	if tableSize <= 0 {
		err = fmt.Errorf("table size must be higher than 0 (zero), got %d", tableSize)
		return
	}

	algorithm, err := cmd.Flags().GetString("hash")
	if err != nil {
		return
	}

	duplicates, err := cmd.Flags().GetString("duplicates")
	if err != nil {
		return
	}

	catalogConf.TableSize = tableSize
	catalogConf.Duplicates, err = policy.ParseDuplicates(duplicates)
	if err != nil {
		return
	}

	switch strings.ToLower(algorithm) {
	case "course":
	case "crc32":
		catalogConf.HashAlgorithm = hash.NewSeparateChainingHashAlgorithm(tableSize)
	default:
		err = fmt.Errorf("unknown hash algorithm %q, use course or crc32", algorithm)
	}

	return
}

// isTerminal - Returns true if f is an *os.File attached to a terminal
func isTerminal(f any) bool {
	file, ok := f.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}

// inIsTerminal - Returns true if the command reads from a terminal
func inIsTerminal(cmd *cobra.Command) bool {
	return isTerminal(cmd.InOrStdin())
}

// outIsTerminal - Returns true if the command writes to a terminal
func outIsTerminal(cmd *cobra.Command) bool {
	return isTerminal(cmd.OutOrStdout())
}
