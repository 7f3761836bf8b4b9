package separatechaining

import (
	"fmt"

	"github.com/gostonefire/coursehashmap/catalogerr"
	"github.com/gostonefire/coursehashmap/internal/model"
	"github.com/gostonefire/coursehashmap/internal/utils"
)

// getBucketNo - Returns which bucket number that the given canonical identifier results in
func (S *SCTable) getBucketNo(id string) (bucketNo int64, err error) {
	bucketNo = S.hashAlgorithm.HashFunc1(id)
	if bucketNo < 0 || bucketNo >= S.numberOfBucketsAvailable {
		err = fmt.Errorf("recieved bucket number from bucket algorithm is outside permitted range")
		return
	}

	return
}

// find - Returns the first course in the bucket, head first then overflow chain, with matching identifier.
// The returned course is the stored one and must not be handed out without cloning.
func (S *SCTable) find(bucket *model.Bucket, id string) (course model.Course, err error) {
	if bucket.Head.IsEmpty() {
		err = catalogerr.NewNoRecordFound(id)
		return
	}

	if head := bucket.Head.Unwrap(); head.ID == id {
		course = head
		return
	}

	for node := bucket.Overflow; node != nil; node = node.Next {
		if node.Course.ID == id {
			course = node.Course
			return
		}
	}

	err = catalogerr.NewNoRecordFound(id)

	return
}

// replace - Overwrites the first course in the bucket with the same identifier as course
func (S *SCTable) replace(bucket *model.Bucket, course model.Course) {
	if bucket.Head.Unwrap().ID == course.ID {
		bucket.Head = utils.Some(course)
		return
	}

	for node := bucket.Overflow; node != nil; node = node.Next {
		if node.Course.ID == course.ID {
			node.Course = course
			return
		}
	}
}

// appendOverflow - Links a new node holding course at the tail of the bucket overflow chain
func (S *SCTable) appendOverflow(bucket *model.Bucket, course model.Course) {
	newNode := &model.Node{Course: course}

	if bucket.Overflow == nil {
		bucket.Overflow = newNode
		return
	}

	node := bucket.Overflow
	for node.Next != nil {
		node = node.Next
	}
	node.Next = newNode
}

// removeHead - Drops the head course of a bucket, the first overflow node (if any) takes its place
func (S *SCTable) removeHead(bucket *model.Bucket) {
	if bucket.Overflow == nil {
		bucket.Head = utils.None[model.Course]()
		return
	}

	promoted := bucket.Overflow
	bucket.Head = utils.Some(promoted.Course)
	bucket.Overflow = promoted.Next
	promoted.Next = nil
}

// unlink - Splices node out of the bucket overflow chain, previous is the node before it or nil if node is first
func (S *SCTable) unlink(bucket *model.Bucket, previous, node *model.Node) {
	if previous == nil {
		bucket.Overflow = node.Next
	} else {
		previous.Next = node.Next
	}
	node.Next = nil
}
