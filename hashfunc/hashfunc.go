package hashfunc

// HashAlgorithm - Interface that permits a user of the course hash map to supply a custom bucket
// selection algorithm suited for its particular distribution of course identifiers.
type HashAlgorithm interface {
	// SetTableSize - Sets the table size for the hash algorithm.
	// It is called when a table is created. Hence, if a custom hash algorithm is supplied that implements this
	// interface and the instance is already having a table size, it will be overwritten by the number of buckets
	// requested for the table.
	//   - tableSize is the number of buckets the table will address
	SetTableSize(tableSize int64)

	// HashFunc1 - Given a canonical course identifier it generates an index (bucket) between 0 and table size - 1
	// Any number returned outside the table size (0 -> table size - 1) will result in an error down stream.
	HashFunc1(id string) int64

	// GetTableSize - Returns the table size the implemented hash function is supporting
	// It is very important that this function return the actual table size and not just the table size given at
	// instantiating time or in a call to SetTableSize. Some algorithms round up to the nearest 2 to the power of x,
	// and if such operations are built in the implementation of this interface it must be covered in GetTableSize.
	GetTableSize() int64
}
