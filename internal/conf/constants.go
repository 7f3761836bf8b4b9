package conf

// DefaultTableSize - Number of buckets used when no table size is configured
const DefaultTableSize int64 = 179

// IdPrefixLength - Number of leading identifier characters whose codes are summed by the course code hash
const IdPrefixLength int = 4

// IdNumberLength - Number of identifier characters following the prefix that are parsed as a decimal number
const IdNumberLength int = 3

// MinFieldsPerLine - Minimum number of delimited fields in a source line (id, name and at least one prerequisite field)
const MinFieldsPerLine int = 3

// FieldDelimiter - Delimiter between fields in a source line
const FieldDelimiter string = ","

// PrerequisiteSeparator - Separator used when prerequisites are rendered as one string
const PrerequisiteSeparator string = ", "
