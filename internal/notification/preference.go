package notification

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"crewdeck.io/notifier/ent"
	entpreference "crewdeck.io/notifier/ent/preference"
	apperrors "crewdeck.io/notifier/internal/pkg/errors"
)

// Digest frequency constants matching ent/schema/preference.go enum values.
const (
	DigestInstant = "INSTANT"
	DigestDaily   = "DAILY"
	DigestWeekly  = "WEEKLY"
	DigestOff     = "OFF"
)

// Prefs is the effective preference view returned to callers. For users
// without a stored record it reflects the default-allow baseline.
type Prefs struct {
	UserID            string   `json:"user_id"`
	EnabledCategories []string `json:"enabled_categories"`
	Sound             bool     `json:"sound"`
	Vibration         bool     `json:"vibration"`
	Digest            string   `json:"digest"`
	QuietStart        string   `json:"quiet_start,omitempty"`
	QuietEnd          string   `json:"quiet_end,omitempty"`
}

// PrefsUpdate carries a partial preference update; nil fields are untouched.
type PrefsUpdate struct {
	EnabledCategories *[]string `json:"enabled_categories,omitempty"`
	Sound             *bool     `json:"sound,omitempty"`
	Vibration         *bool     `json:"vibration,omitempty"`
	Digest            *string   `json:"digest,omitempty"`
	QuietStart        *string   `json:"quiet_start,omitempty"`
	QuietEnd          *string   `json:"quiet_end,omitempty"`
}

// PreferenceService reads and updates per-user preferences. Records are
// created lazily on the first explicit update and never by the factory.
type PreferenceService struct {
	client *ent.Client
	gate   *Gate
}

// NewPreferenceService creates a preference service. The gate may be nil in
// contexts without a fan-out path (e.g. the seed command).
func NewPreferenceService(client *ent.Client, gate *Gate) *PreferenceService {
	return &PreferenceService{client: client, gate: gate}
}

// Get returns the user's effective preferences. Absence of a record yields
// the default: all categories enabled, instant digest.
func (s *PreferenceService) Get(ctx context.Context, userID string) (Prefs, error) {
	pref, err := s.client.Preference.Query().
		Where(entpreference.UserIDEQ(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return Prefs{
				UserID:            userID,
				EnabledCategories: Categories(),
				Sound:             true,
				Vibration:         true,
				Digest:            DigestInstant,
			}, nil
		}
		return Prefs{}, fmt.Errorf("load preference for user %s: %w", userID, err)
	}
	return prefsFromEnt(pref), nil
}

// Update applies a partial update, creating the record on first use.
// The preference gate cache is invalidated on success.
func (s *PreferenceService) Update(ctx context.Context, userID string, upd PrefsUpdate) (Prefs, error) {
	if err := validateUpdate(upd); err != nil {
		return Prefs{}, err
	}

	existing, err := s.client.Preference.Query().
		Where(entpreference.UserIDEQ(userID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return Prefs{}, fmt.Errorf("load preference for user %s: %w", userID, err)
	}

	var saved *ent.Preference
	if ent.IsNotFound(err) {
		create := s.client.Preference.Create().
			SetID(uuid.NewString()).
			SetUserID(userID).
			SetEnabledCategories(Categories())
		applyCreate(create, upd)
		saved, err = create.Save(ctx)
	} else {
		update := existing.Update()
		applyUpdate(update, upd)
		saved, err = update.Save(ctx)
	}
	if err != nil {
		return Prefs{}, fmt.Errorf("save preference for user %s: %w", userID, err)
	}

	if s.gate != nil {
		s.gate.Invalidate(userID)
	}
	return prefsFromEnt(saved), nil
}

func validateUpdate(upd PrefsUpdate) error {
	if upd.EnabledCategories != nil {
		for _, c := range *upd.EnabledCategories {
			if !ValidCategory(c) {
				return apperrors.ErrUnknownCategoryf(c)
			}
		}
	}
	if upd.Digest != nil {
		if _, err := toEntDigest(*upd.Digest); err != nil {
			return apperrors.New(apperrors.CodeValidationFailed,
				fmt.Sprintf("invalid digest frequency %q", *upd.Digest), http.StatusBadRequest)
		}
	}
	return nil
}

func applyCreate(create *ent.PreferenceCreate, upd PrefsUpdate) {
	if upd.EnabledCategories != nil {
		create.SetEnabledCategories(*upd.EnabledCategories)
	}
	if upd.Sound != nil {
		create.SetSound(*upd.Sound)
	}
	if upd.Vibration != nil {
		create.SetVibration(*upd.Vibration)
	}
	if upd.Digest != nil {
		d, _ := toEntDigest(*upd.Digest)
		create.SetDigest(d)
	}
	if upd.QuietStart != nil {
		create.SetQuietStart(*upd.QuietStart)
	}
	if upd.QuietEnd != nil {
		create.SetQuietEnd(*upd.QuietEnd)
	}
}

func applyUpdate(update *ent.PreferenceUpdateOne, upd PrefsUpdate) {
	if upd.EnabledCategories != nil {
		update.SetEnabledCategories(*upd.EnabledCategories)
	}
	if upd.Sound != nil {
		update.SetSound(*upd.Sound)
	}
	if upd.Vibration != nil {
		update.SetVibration(*upd.Vibration)
	}
	if upd.Digest != nil {
		d, _ := toEntDigest(*upd.Digest)
		update.SetDigest(d)
	}
	if upd.QuietStart != nil {
		update.SetQuietStart(*upd.QuietStart)
	}
	if upd.QuietEnd != nil {
		update.SetQuietEnd(*upd.QuietEnd)
	}
}

func prefsFromEnt(p *ent.Preference) Prefs {
	return Prefs{
		UserID:            p.UserID,
		EnabledCategories: p.EnabledCategories,
		Sound:             p.Sound,
		Vibration:         p.Vibration,
		Digest:            p.Digest.String(),
		QuietStart:        p.QuietStart,
		QuietEnd:          p.QuietEnd,
	}
}

func toEntDigest(d string) (entpreference.Digest, error) {
	switch d {
	case DigestInstant:
		return entpreference.DigestINSTANT, nil
	case DigestDaily:
		return entpreference.DigestDAILY, nil
	case DigestWeekly:
		return entpreference.DigestWEEKLY, nil
	case DigestOff:
		return entpreference.DigestOFF, nil
	default:
		return "", fmt.Errorf("unknown digest frequency: %s", d)
	}
}
