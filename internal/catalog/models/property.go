package models

import (
	"time"

	id "realestate/pkg/domain"
)

// Property is the aggregate root of the catalog. It owns its images and
// sale traces; both keep insertion order.
//
// Invariants:
//   - Name 1..100 characters, address 1..200 characters, both trimmed
//   - 0 < price <= 1,000,000,000
//   - CodeInternal 1..20 characters, stored trimmed and upper-cased
//   - 1800 <= year <= current year + 1, read from the validation clock
//   - OwnerID parses as a domain id; the referenced owner is not checked here
type Property struct {
	id           id.PropertyID
	name         string
	address      string
	price        float64
	codeInternal string
	year         int
	ownerID      id.OwnerID
	images       []*PropertyImage
	traces       []*PropertyTrace
}

// PropertyRecord is the persisted shape of a Property. Images and traces
// live in their own collections.
type PropertyRecord struct {
	ID           id.PropertyID `bson:"_id" json:"id"`
	Name         string        `bson:"name" json:"name"`
	Address      string        `bson:"address" json:"address"`
	Price        float64       `bson:"price" json:"price"`
	CodeInternal string        `bson:"codeInternal" json:"codeInternal"`
	Year         int           `bson:"year" json:"year"`
	OwnerID      id.OwnerID    `bson:"idOwner" json:"idOwner"`
}

// NewProperty validates every field and assigns a fresh id.
func NewProperty(name, address string, price float64, codeInternal string, year int, ownerID string, now time.Time) (*Property, error) {
	p := &Property{id: id.NewPropertyID()}
	if err := p.UpdateName(name); err != nil {
		return nil, err
	}
	if err := p.UpdateAddress(address); err != nil {
		return nil, err
	}
	if err := p.UpdatePrice(price); err != nil {
		return nil, err
	}
	if err := p.UpdateCodeInternal(codeInternal); err != nil {
		return nil, err
	}
	if err := p.UpdateYear(year, now); err != nil {
		return nil, err
	}
	if err := p.UpdateOwner(ownerID); err != nil {
		return nil, err
	}
	return p, nil
}

// RestoreProperty rebuilds a property and its children from persisted state.
func RestoreProperty(rec PropertyRecord, images []PropertyImageRecord, traces []PropertyTraceRecord) *Property {
	p := &Property{
		id:           rec.ID,
		name:         rec.Name,
		address:      rec.Address,
		price:        rec.Price,
		codeInternal: rec.CodeInternal,
		year:         rec.Year,
		ownerID:      rec.OwnerID,
	}
	for _, img := range images {
		p.images = append(p.images, RestorePropertyImage(img))
	}
	for _, tr := range traces {
		p.traces = append(p.traces, RestorePropertyTrace(tr))
	}
	return p
}

func (p *Property) ID() id.PropertyID    { return p.id }
func (p *Property) Name() string         { return p.name }
func (p *Property) Address() string      { return p.address }
func (p *Property) Price() float64       { return p.price }
func (p *Property) CodeInternal() string { return p.codeInternal }
func (p *Property) Year() int            { return p.year }
func (p *Property) OwnerID() id.OwnerID  { return p.ownerID }

// Images returns the images in insertion order. The slice is a copy.
func (p *Property) Images() []*PropertyImage {
	return append([]*PropertyImage(nil), p.images...)
}

// Traces returns the sale traces in insertion order. The slice is a copy.
func (p *Property) Traces() []*PropertyTrace {
	return append([]*PropertyTrace(nil), p.traces...)
}

func (p *Property) UpdateName(name string) error {
	v, err := requireText("name", "name", name, MaxNameLength)
	if err != nil {
		return err
	}
	p.name = v
	return nil
}

func (p *Property) UpdateAddress(address string) error {
	v, err := requireText("address", "address", address, MaxAddressLength)
	if err != nil {
		return err
	}
	p.address = v
	return nil
}

func (p *Property) UpdatePrice(price float64) error {
	if err := validatePrice(price); err != nil {
		return err
	}
	p.price = price
	return nil
}

func (p *Property) UpdateCodeInternal(code string) error {
	v, err := normalizeCodeInternal(code)
	if err != nil {
		return err
	}
	p.codeInternal = v
	return nil
}

func (p *Property) UpdateYear(year int, now time.Time) error {
	if err := validateYear(year, now); err != nil {
		return err
	}
	p.year = year
	return nil
}

func (p *Property) UpdateOwner(ownerID string) error {
	v, err := ownerRef("idOwner", ownerID)
	if err != nil {
		return err
	}
	p.ownerID = v
	return nil
}

// AddImage attaches a new image built from file. Duplicate files are allowed.
func (p *Property) AddImage(file string, enabled bool) (*PropertyImage, error) {
	img, err := NewPropertyImage(p.id.String(), file, enabled)
	if err != nil {
		return nil, err
	}
	p.images = append(p.images, img)
	return img, nil
}

// RemoveImage detaches the image with imageID. Missing ids are ignored.
func (p *Property) RemoveImage(imageID id.ImageID) bool {
	for i, img := range p.images {
		if img.id == imageID {
			p.images = append(p.images[:i], p.images[i+1:]...)
			return true
		}
	}
	return false
}

// AddTrace records a sale. now is the validation clock for dateSale.
func (p *Property) AddTrace(dateSale time.Time, name string, value, tax float64, now time.Time) (*PropertyTrace, error) {
	tr, err := NewPropertyTrace(p.id.String(), dateSale, name, value, tax, now)
	if err != nil {
		return nil, err
	}
	p.traces = append(p.traces, tr)
	return tr, nil
}

// TotalTracesValue sums the value of every recorded sale.
func (p *Property) TotalTracesValue() float64 {
	var total float64
	for _, tr := range p.traces {
		total += tr.value
	}
	return total
}

// Age is the number of calendar years since the property's year.
func (p *Property) Age(now time.Time) int {
	return now.Year() - p.year
}

func (p *Property) Record() PropertyRecord {
	return PropertyRecord{
		ID:           p.id,
		Name:         p.name,
		Address:      p.address,
		Price:        p.price,
		CodeInternal: p.codeInternal,
		Year:         p.year,
		OwnerID:      p.ownerID,
	}
}

// WithImages returns the read model of p with its current images.
func (p *Property) WithImages() PropertyWithImages {
	out := PropertyWithImages{PropertyRecord: p.Record(), Images: []PropertyImageRecord{}}
	for _, img := range p.images {
		out.Images = append(out.Images, img.Record())
	}
	return out
}
