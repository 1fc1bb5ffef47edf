// Package memory provides standard MemoryManager
// implementations for bounding the message log in ragent
// agent loops.
//
//   - [SlidingWindow]: keeps the last N messages
//   - [TokenWindow]: keeps the most recent messages that
//     fit in a token budget
//
// Both preserve the leading run of system messages so the
// agent never loses its instructions to truncation.
package memory
