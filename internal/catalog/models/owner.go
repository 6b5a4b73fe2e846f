package models

import (
	"time"

	id "realestate/pkg/domain"
)

// Owner is a person who owns catalog properties.
//
// Invariants:
//   - Name is non-blank and at most 100 characters, stored trimmed
//   - Address is non-blank and at most 200 characters, stored trimmed
//   - Photo, when present, is an absolute URL
//   - Birthday, when present, is not after the validation clock
type Owner struct {
	id       id.OwnerID
	name     string
	address  string
	photo    string
	birthday *time.Time
}

// OwnerRecord is the persisted shape of an Owner.
type OwnerRecord struct {
	ID       id.OwnerID `bson:"_id" json:"id"`
	Name     string     `bson:"name" json:"name"`
	Address  string     `bson:"address" json:"address"`
	Photo    string     `bson:"photo,omitempty" json:"photo,omitempty"`
	Birthday *time.Time `bson:"birthday,omitempty" json:"birthday,omitempty"`
}

// NewOwner validates every field and assigns a fresh id.
func NewOwner(name, address, photo string, birthday *time.Time, now time.Time) (*Owner, error) {
	o := &Owner{id: id.NewOwnerID()}
	if err := o.UpdateName(name); err != nil {
		return nil, err
	}
	if err := o.UpdateAddress(address); err != nil {
		return nil, err
	}
	if err := o.UpdatePhoto(photo); err != nil {
		return nil, err
	}
	if err := o.UpdateBirthday(birthday, now); err != nil {
		return nil, err
	}
	return o, nil
}

// RestoreOwner rebuilds an owner from persisted state.
func RestoreOwner(rec OwnerRecord) *Owner {
	return &Owner{
		id:       rec.ID,
		name:     rec.Name,
		address:  rec.Address,
		photo:    rec.Photo,
		birthday: copyTime(rec.Birthday),
	}
}

func (o *Owner) ID() id.OwnerID       { return o.id }
func (o *Owner) Name() string         { return o.name }
func (o *Owner) Address() string      { return o.address }
func (o *Owner) Photo() string        { return o.photo }
func (o *Owner) Birthday() *time.Time { return copyTime(o.birthday) }

func (o *Owner) UpdateName(name string) error {
	v, err := requireText("name", "name", name, MaxNameLength)
	if err != nil {
		return err
	}
	o.name = v
	return nil
}

func (o *Owner) UpdateAddress(address string) error {
	v, err := requireText("address", "address", address, MaxAddressLength)
	if err != nil {
		return err
	}
	o.address = v
	return nil
}

// UpdatePhoto sets or clears the photo URL. A blank value clears it.
func (o *Owner) UpdatePhoto(photo string) error {
	if isBlank(photo) {
		o.photo = ""
		return nil
	}
	v, err := requireURL("photo", "photo", photo)
	if err != nil {
		return err
	}
	o.photo = v
	return nil
}

// UpdateBirthday sets or clears the birthday. now is the validation clock.
func (o *Owner) UpdateBirthday(birthday *time.Time, now time.Time) error {
	if birthday == nil {
		o.birthday = nil
		return nil
	}
	if err := notInFuture("birthday", "birthday", *birthday, now); err != nil {
		return err
	}
	o.birthday = copyTime(birthday)
	return nil
}

// Age returns completed years at today, or 0 without a birthday.
func (o *Owner) Age(today time.Time) int {
	if o.birthday == nil {
		return 0
	}
	b := *o.birthday
	age := today.Year() - b.Year()
	if today.Month() < b.Month() || (today.Month() == b.Month() && today.Day() < b.Day()) {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}

func (o *Owner) Record() OwnerRecord {
	return OwnerRecord{
		ID:       o.id,
		Name:     o.name,
		Address:  o.address,
		Photo:    o.photo,
		Birthday: copyTime(o.birthday),
	}
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
