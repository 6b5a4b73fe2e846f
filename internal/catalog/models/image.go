package models

import (
	id "realestate/pkg/domain"
)

// PropertyImage is a picture attached to a property. Only enabled images are
// candidates for the primary image.
type PropertyImage struct {
	id         id.ImageID
	propertyID id.PropertyID
	file       string
	enabled    bool
}

// PropertyImageRecord is the persisted shape of a PropertyImage.
type PropertyImageRecord struct {
	ID         id.ImageID    `bson:"_id" json:"id"`
	PropertyID id.PropertyID `bson:"idProperty" json:"idProperty"`
	File       string        `bson:"file" json:"file"`
	Enabled    bool          `bson:"enabled" json:"enabled"`
}

// NewPropertyImage validates the owning property id and the file URL.
func NewPropertyImage(propertyID, file string, enabled bool) (*PropertyImage, error) {
	pid, err := propertyRef("idProperty", propertyID)
	if err != nil {
		return nil, err
	}
	img := &PropertyImage{
		id:         id.NewImageID(),
		propertyID: pid,
		enabled:    enabled,
	}
	if err := img.UpdateFile(file); err != nil {
		return nil, err
	}
	return img, nil
}

// RestorePropertyImage rebuilds an image from persisted state.
func RestorePropertyImage(rec PropertyImageRecord) *PropertyImage {
	return &PropertyImage{
		id:         rec.ID,
		propertyID: rec.PropertyID,
		file:       rec.File,
		enabled:    rec.Enabled,
	}
}

func (i *PropertyImage) ID() id.ImageID            { return i.id }
func (i *PropertyImage) PropertyID() id.PropertyID { return i.propertyID }
func (i *PropertyImage) File() string              { return i.file }
func (i *PropertyImage) Enabled() bool             { return i.enabled }

func (i *PropertyImage) UpdateFile(file string) error {
	v, err := requireURL("file", "file", file)
	if err != nil {
		return err
	}
	i.file = v
	return nil
}

func (i *PropertyImage) Enable()        { i.enabled = true }
func (i *PropertyImage) Disable()       { i.enabled = false }
func (i *PropertyImage) ToggleEnabled() { i.enabled = !i.enabled }

func (i *PropertyImage) Record() PropertyImageRecord {
	return PropertyImageRecord{
		ID:         i.id,
		PropertyID: i.propertyID,
		File:       i.file,
		Enabled:    i.enabled,
	}
}
