package protocol

import (
	"github.com/joeydtaylor/radqr/pkg/internal/types"
)

// GetComponentMetadata returns the encoder's metadata.
func (e *Encoder) GetComponentMetadata() types.ComponentMetadata {
	return e.componentMetadata
}

// SetComponentMetadata updates the encoder's name and id.
func (e *Encoder) SetComponentMetadata(name string, id string) {
	e.componentMetadata.Name = name
	e.componentMetadata.ID = id
}

// GetOptions returns the transform flags the encoder stamps on payloads.
func (e *Encoder) GetOptions() types.EncodeOptions {
	return e.options
}

// GetComponentMetadata returns the decoder's metadata.
func (d *Decoder) GetComponentMetadata() types.ComponentMetadata {
	return d.componentMetadata
}

// SetComponentMetadata updates the decoder's name and id.
func (d *Decoder) SetComponentMetadata(name string, id string) {
	d.componentMetadata.Name = name
	d.componentMetadata.ID = id
}
