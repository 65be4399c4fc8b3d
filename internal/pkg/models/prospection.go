package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Outcome values recorded by the mobile form. Metrics match these exactly,
// case-sensitive.
const (
	OutcomeUnavailable   = "Client n'est pas disponible"
	OutcomeNotInterested = "Client non intéressé"
	OutcomeConfirmed     = "Vente confirmée"
)

// Client type values. Metrics match these case-insensitively.
const (
	ClientTypeB2B = "B2B"
	ClientTypeB2C = "B2C"
)

// Prospection is the record of a sales visit outcome for a phone number.
// Submissions upsert the salesperson's current record (last write wins).
type Prospection struct {
	ID                  uuid.UUID  `json:"id" db:"id"`
	Phone               string     `json:"phone" db:"phone"`
	Zone                string     `json:"zone" db:"zone"`
	Immeuble            string     `json:"immeuble" db:"immeuble"`
	BlocImmeuble        string     `json:"blocImmeuble" db:"bloc_immeuble"`
	Appartement         string     `json:"appartement" db:"appartement"`
	NomClient           string     `json:"nomClient" db:"nom_client"`
	NumContact          string     `json:"numContact" db:"num_contact"`
	ResultatProspection string     `json:"resultatProspection" db:"resultat_prospection"`
	TypeClient          string     `json:"typeClient" db:"type_client"`
	LocationShared      bool       `json:"locationShared" db:"location_shared"`
	Latitude            *float64   `json:"latitude,omitempty" db:"latitude"`
	Longitude           *float64   `json:"longitude,omitempty" db:"longitude"`
	Geohash             *string    `json:"geohash,omitempty" db:"geohash"`
	LocationTimestamp   *time.Time `json:"locationTimestamp,omitempty" db:"location_timestamp"`
	CreatedAt           time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at" db:"updated_at"`
}

// ProfileLocation is the nested location object of the profile view
type ProfileLocation struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Timestamp time.Time `json:"timestamp"`
}

// ProfileRequest is the partial payload of POST /profile. Nil fields are
// left untouched when updating an existing record.
type ProfileRequest struct {
	Nom                 *string          `json:"nom"`
	Prenom              *string          `json:"prenom"`
	Zone                *string          `json:"zone"`
	Immeuble            *string          `json:"immeuble"`
	BlocImmeuble        *string          `json:"blocImmeuble"`
	Appartement         *string          `json:"appartement"`
	NomClient           *string          `json:"nomClient"`
	NumContact          *string          `json:"numContact"`
	ResultatProspection *string          `json:"resultatProspection"`
	TypeClient          *string          `json:"typeClient"`
	Location            *ProfileLocation `json:"location"`
}

// Profile is the merged identity + visit record view returned to clients.
// The location object is present only when a location was ever recorded.
type Profile struct {
	Phone               string           `json:"phone"`
	Nom                 string           `json:"nom"`
	Prenom              string           `json:"prenom"`
	Zone                string           `json:"zone,omitempty"`
	Immeuble            string           `json:"immeuble,omitempty"`
	BlocImmeuble        string           `json:"blocImmeuble,omitempty"`
	Appartement         string           `json:"appartement,omitempty"`
	NomClient           string           `json:"nomClient,omitempty"`
	NumContact          string           `json:"numContact,omitempty"`
	ResultatProspection string           `json:"resultatProspection,omitempty"`
	TypeClient          string           `json:"typeClient,omitempty"`
	LocationShared      bool             `json:"locationShared"`
	Location            *ProfileLocation `json:"location,omitempty"`
	CreatedAt           time.Time        `json:"createdAt"`
	UpdatedAt           time.Time        `json:"updatedAt"`
}

// BuildProfile merges an identity with its current visit record into the
// response shape. The prospection may be nil when nothing was submitted yet.
func BuildProfile(user *User, p *Prospection) *Profile {
	profile := &Profile{
		Phone:     user.Phone,
		Nom:       user.Nom,
		Prenom:    user.Prenom,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}

	if p == nil {
		return profile
	}

	profile.Zone = p.Zone
	profile.Immeuble = p.Immeuble
	profile.BlocImmeuble = p.BlocImmeuble
	profile.Appartement = p.Appartement
	profile.NomClient = p.NomClient
	profile.NumContact = p.NumContact
	profile.ResultatProspection = p.ResultatProspection
	profile.TypeClient = p.TypeClient
	profile.LocationShared = p.LocationShared
	if p.UpdatedAt.After(profile.UpdatedAt) {
		profile.UpdatedAt = p.UpdatedAt
	}

	if p.Latitude != nil && p.Longitude != nil {
		loc := &ProfileLocation{
			Latitude:  *p.Latitude,
			Longitude: *p.Longitude,
		}
		if p.LocationTimestamp != nil {
			loc.Timestamp = *p.LocationTimestamp
		}
		profile.Location = loc
	}

	return profile
}

// DisplayName returns the salesperson's name for dashboards, falling back
// to the phone number when no name was provisioned.
func (u *User) DisplayName() string {
	name := strings.TrimSpace(u.Prenom + " " + u.Nom)
	if name == "" {
		return u.Phone
	}
	return name
}
