package core

import "fmt"

// Ticket is an opaque, copyable handle to a resource slot. A ticket is
// valid only for the storage that issued it; the slot index behind a
// ticket never changes after issuance.
type Ticket int

// StorageKind tags which typed resource storage a key belongs to.
type StorageKind int

const (
	StorageTexture StorageKind = iota
	StorageFont
	StorageSound
	StorageMusic
)

func (k StorageKind) String() string {
	switch k {
	case StorageTexture:
		return "texture"
	case StorageFont:
		return "font"
	case StorageSound:
		return "sound"
	case StorageMusic:
		return "music"
	}
	return fmt.Sprintf("storage(%d)", int(k))
}
