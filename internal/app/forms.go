package app

import (
	"debaren/internal/models"
	"mime/multipart"
	"strconv"
	"strings"
)

// Form field names shared by the admin API and the dashboard forms.
const (
	FieldImage         = "image"
	FieldGalleryUpload = "gallery_upload"
	FieldGallery       = "gallery"
	FieldCaption       = "caption"
)

type formValues map[string][]string

func (f formValues) str(key string) string {
	if v := f[key]; len(v) > 0 {
		return strings.TrimSpace(v[0])
	}
	return ""
}

func (f formValues) has(key string) bool {
	_, ok := f[key]
	return ok
}

// floatPtr parses an optional decimal; blank means unset.
func (f formValues) floatPtr(key string) (*float64, error) {
	s := f.str(key)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, invalidf("%s must be a number", key)
	}
	return &v, nil
}

func (f formValues) floatOr(key string, def float64) (float64, error) {
	p, err := f.floatPtr(key)
	if err != nil || p == nil {
		return def, err
	}
	return *p, nil
}

func (f formValues) intOr(key string, def int) (int, error) {
	s := f.str(key)
	if s == "" {
		return def, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, invalidf("%s must be a whole number", key)
	}
	return v, nil
}

// bool accepts the spellings browsers and admin clients send for checkboxes.
func (f formValues) boolOr(key string, def bool) (bool, error) {
	switch strings.ToLower(f.str(key)) {
	case "":
		if f.has(key) {
			return false, nil
		}
		return def, nil
	case "true", "1", "on", "yes":
		return true, nil
	case "false", "0", "off", "no":
		return false, nil
	default:
		return false, invalidf("%s must be true or false", key)
	}
}

func (f formValues) datePtr(key string) (*models.Date, error) {
	s := f.str(key)
	if s == "" {
		return nil, nil
	}
	d, err := models.ParseDate(s)
	if err != nil {
		return nil, invalidf("%s must be a date in YYYY-MM-DD format", key)
	}
	return &d, nil
}

func firstFile(form *multipart.Form, key string) *multipart.FileHeader {
	if form == nil {
		return nil
	}
	if files := form.File[key]; len(files) > 0 {
		return files[0]
	}
	return nil
}

func values(form *multipart.Form) formValues {
	if form == nil {
		return formValues{}
	}
	return form.Value
}

// VenueForm is a venue submitted as multipart form data with its uploads.
type VenueForm struct {
	Venue   models.Venue
	Image   *multipart.FileHeader
	Gallery []*multipart.FileHeader
}

func ParseVenueForm(form *multipart.Form) (VenueForm, error) {
	f := values(form)

	v := models.Venue{
		Name:         f.str("name"),
		VenueType:    models.VenueType(f.str("venue_type")),
		Description:  f.str("description"),
		Address:      f.str("address"),
		City:         f.str("city"),
		Region:       f.str("region"),
		Country:      f.str("country"),
		PostalCode:   f.str("postal_code"),
		Amenities:    models.ParseAmenities(f.str("amenities")),
		ContactEmail: f.str("contact_email"),
		ContactPhone: f.str("contact_phone"),
		Website:      f.str("website"),
		Tags:         f.str("tags"),
	}
	if v.Country == "" {
		v.Country = models.DefaultCountry
	}

	var err error
	if v.Latitude, err = f.floatPtr("latitude"); err != nil {
		return VenueForm{}, err
	}
	if v.Longitude, err = f.floatPtr("longitude"); err != nil {
		return VenueForm{}, err
	}
	if v.PricePerDay, err = f.floatPtr("price_per_day"); err != nil {
		return VenueForm{}, err
	}
	if v.Capacity, err = f.intOr("capacity", 0); err != nil {
		return VenueForm{}, err
	}
	if v.Rating, err = f.floatOr("rating", 0); err != nil {
		return VenueForm{}, err
	}
	if v.Available, err = f.boolOr("available", true); err != nil {
		return VenueForm{}, err
	}

	out := VenueForm{Venue: v, Image: firstFile(form, FieldImage)}
	if form != nil {
		out.Gallery = form.File[FieldGalleryUpload]
	}

	return out, nil
}

func ParsePopupVenueForm(form *multipart.Form) (*models.PopupVenue, *multipart.FileHeader, error) {
	f := values(form)

	return &models.PopupVenue{
		Name:     f.str("name"),
		Location: f.str("location"),
	}, firstFile(form, FieldImage), nil
}

func ParseSchoolProgramForm(form *multipart.Form) (*models.SchoolProgram, *multipart.FileHeader, error) {
	f := values(form)

	p := &models.SchoolProgram{
		Name:         f.str("name"),
		Description:  f.str("description"),
		Address:      f.str("address"),
		City:         f.str("city"),
		Region:       f.str("region"),
		Country:      f.str("country"),
		ContactEmail: f.str("contact_email"),
		ContactPhone: f.str("contact_phone"),
		Website:      f.str("website"),
	}
	if p.Country == "" {
		p.Country = models.DefaultCountry
	}

	var err error
	if p.StartDate, err = f.datePtr("start_date"); err != nil {
		return nil, nil, err
	}
	if p.EndDate, err = f.datePtr("end_date"); err != nil {
		return nil, nil, err
	}
	if p.StartDate != nil && p.EndDate != nil && p.EndDate.Before(p.StartDate.Time) {
		return nil, nil, ErrInvalidDateRange
	}

	return p, firstFile(form, FieldImage), nil
}

func ParseAboutForm(form *multipart.Form) (*models.About, *multipart.FileHeader, error) {
	f := values(form)

	return &models.About{
		Title:       f.str("title"),
		Phone:       f.str("phone"),
		Address:     f.str("address"),
		Description: f.str("description"),
	}, firstFile(form, FieldImage), nil
}
