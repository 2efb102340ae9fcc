// internal/types/types.go
package types

// EntityID is the identity shared by every simulation object. Zero means "none".
type EntityID int64
