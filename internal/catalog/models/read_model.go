package models

// PropertyWithImages is the read model returned by filtered queries: the
// property's scalar fields plus its images joined from the image collection.
type PropertyWithImages struct {
	PropertyRecord `bson:",inline"`
	Images         []PropertyImageRecord `bson:"images" json:"images"`
}

// PrimaryImage is the file of the first enabled image, or "" when none is enabled.
func (p PropertyWithImages) PrimaryImage() string {
	for _, img := range p.Images {
		if img.Enabled {
			return img.File
		}
	}
	return ""
}
