package models

import (
	"time"

	id "realestate/pkg/domain"
)

// PropertyTrace records one sale in a property's history.
type PropertyTrace struct {
	id         id.TraceID
	propertyID id.PropertyID
	dateSale   time.Time
	name       string
	value      float64
	tax        float64
}

// PropertyTraceRecord is the persisted shape of a PropertyTrace.
type PropertyTraceRecord struct {
	ID         id.TraceID    `bson:"_id" json:"id"`
	PropertyID id.PropertyID `bson:"idProperty" json:"idProperty"`
	DateSale   time.Time     `bson:"dateSale" json:"dateSale"`
	Name       string        `bson:"name" json:"name"`
	Value      float64       `bson:"value" json:"value"`
	Tax        float64       `bson:"tax" json:"tax"`
}

// NewPropertyTrace validates every field. now is the validation clock for dateSale.
func NewPropertyTrace(propertyID string, dateSale time.Time, name string, value, tax float64, now time.Time) (*PropertyTrace, error) {
	pid, err := propertyRef("idProperty", propertyID)
	if err != nil {
		return nil, err
	}
	t := &PropertyTrace{id: id.NewTraceID(), propertyID: pid}
	if err := t.UpdateDateSale(dateSale, now); err != nil {
		return nil, err
	}
	if err := t.UpdateName(name); err != nil {
		return nil, err
	}
	if err := t.UpdateValue(value); err != nil {
		return nil, err
	}
	if err := t.UpdateTax(tax); err != nil {
		return nil, err
	}
	return t, nil
}

// RestorePropertyTrace rebuilds a trace from persisted state.
func RestorePropertyTrace(rec PropertyTraceRecord) *PropertyTrace {
	return &PropertyTrace{
		id:         rec.ID,
		propertyID: rec.PropertyID,
		dateSale:   rec.DateSale,
		name:       rec.Name,
		value:      rec.Value,
		tax:        rec.Tax,
	}
}

func (t *PropertyTrace) ID() id.TraceID            { return t.id }
func (t *PropertyTrace) PropertyID() id.PropertyID { return t.propertyID }
func (t *PropertyTrace) DateSale() time.Time       { return t.dateSale }
func (t *PropertyTrace) Name() string              { return t.name }
func (t *PropertyTrace) Value() float64            { return t.value }
func (t *PropertyTrace) Tax() float64              { return t.tax }

func (t *PropertyTrace) UpdateDateSale(dateSale, now time.Time) error {
	if err := notInFuture("dateSale", "sale date", dateSale, now); err != nil {
		return err
	}
	t.dateSale = dateSale
	return nil
}

func (t *PropertyTrace) UpdateName(name string) error {
	v, err := requireText("name", "name", name, MaxNameLength)
	if err != nil {
		return err
	}
	t.name = v
	return nil
}

func (t *PropertyTrace) UpdateValue(value float64) error {
	if !isFinite(value) || value <= 0 {
		return invalid("value", "value must be greater than zero")
	}
	t.value = value
	return nil
}

func (t *PropertyTrace) UpdateTax(tax float64) error {
	if !isFinite(tax) || tax < 0 {
		return invalid("tax", "tax cannot be negative")
	}
	t.tax = tax
	return nil
}

// TotalAmount is value plus tax.
func (t *PropertyTrace) TotalAmount() float64 {
	return t.value + t.tax
}

// TaxPercentage is tax as a percentage of value, 0 when value is 0.
func (t *PropertyTrace) TaxPercentage() float64 {
	if t.value <= 0 {
		return 0
	}
	return t.tax / t.value * 100
}

func (t *PropertyTrace) Record() PropertyTraceRecord {
	return PropertyTraceRecord{
		ID:         t.id,
		PropertyID: t.propertyID,
		DateSale:   t.dateSale,
		Name:       t.name,
		Value:      t.value,
		Tax:        t.tax,
	}
}
