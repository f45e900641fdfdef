// Package snowflake hands out int64 row IDs for the translation cache
// and the notification log. IDs are time-ordered, so ORDER BY id is a
// usable insertion-order tiebreak.
package snowflake

import "github.com/bwmarrin/snowflake"

var node *snowflake.Node

// Init creates the generator node. This server runs as a single
// process, so main always passes node ID 1; anything in 0-1023 works
// as long as concurrent instances differ.
func Init(nodeID int64) error {
	n, err := snowflake.NewNode(nodeID)
	if err != nil {
		return err
	}
	node = n
	return nil
}

// NextID returns a fresh ID. Init must have run first.
func NextID() int64 {
	return node.Generate().Int64()
}
