// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"crewdeck.io/notifier/ent/notice"
	"crewdeck.io/notifier/ent/preference"
	"crewdeck.io/notifier/ent/reminder"
	"crewdeck.io/notifier/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	noticeMixin := schema.Notice{}.Mixin()
	noticeMixinFields0 := noticeMixin[0].Fields()
	_ = noticeMixinFields0
	noticeFields := schema.Notice{}.Fields()
	_ = noticeFields
	// noticeDescCreatedAt is the schema descriptor for created_at field.
	noticeDescCreatedAt := noticeMixinFields0[0].Descriptor()
	// notice.DefaultCreatedAt holds the default value on creation for the created_at field.
	notice.DefaultCreatedAt = noticeDescCreatedAt.Default.(func() time.Time)
	// noticeDescUserID is the schema descriptor for user_id field.
	noticeDescUserID := noticeFields[1].Descriptor()
	// notice.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	notice.UserIDValidator = noticeDescUserID.Validators[0].(func(string) error)
	// noticeDescTitle is the schema descriptor for title field.
	noticeDescTitle := noticeFields[3].Descriptor()
	// notice.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	notice.TitleValidator = func() func(string) error {
		validators := noticeDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// noticeDescMessage is the schema descriptor for message field.
	noticeDescMessage := noticeFields[4].Descriptor()
	// notice.MessageValidator is a validator for the "message" field. It is called by the builders before save.
	notice.MessageValidator = func() func(string) error {
		validators := noticeDescMessage.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(message string) error {
			for _, fn := range fns {
				if err := fn(message); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// noticeDescRead is the schema descriptor for read field.
	noticeDescRead := noticeFields[9].Descriptor()
	// notice.DefaultRead holds the default value on creation for the read field.
	notice.DefaultRead = noticeDescRead.Default.(bool)
	preferenceMixin := schema.Preference{}.Mixin()
	preferenceMixinFields0 := preferenceMixin[0].Fields()
	_ = preferenceMixinFields0
	preferenceFields := schema.Preference{}.Fields()
	_ = preferenceFields
	// preferenceDescCreatedAt is the schema descriptor for created_at field.
	preferenceDescCreatedAt := preferenceMixinFields0[0].Descriptor()
	// preference.DefaultCreatedAt holds the default value on creation for the created_at field.
	preference.DefaultCreatedAt = preferenceDescCreatedAt.Default.(func() time.Time)
	// preferenceDescUpdatedAt is the schema descriptor for updated_at field.
	preferenceDescUpdatedAt := preferenceMixinFields0[1].Descriptor()
	// preference.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	preference.DefaultUpdatedAt = preferenceDescUpdatedAt.Default.(func() time.Time)
	// preference.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	preference.UpdateDefaultUpdatedAt = preferenceDescUpdatedAt.UpdateDefault.(func() time.Time)
	// preferenceDescUserID is the schema descriptor for user_id field.
	preferenceDescUserID := preferenceFields[1].Descriptor()
	// preference.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	preference.UserIDValidator = preferenceDescUserID.Validators[0].(func(string) error)
	// preferenceDescSound is the schema descriptor for sound field.
	preferenceDescSound := preferenceFields[3].Descriptor()
	// preference.DefaultSound holds the default value on creation for the sound field.
	preference.DefaultSound = preferenceDescSound.Default.(bool)
	// preferenceDescVibration is the schema descriptor for vibration field.
	preferenceDescVibration := preferenceFields[4].Descriptor()
	// preference.DefaultVibration holds the default value on creation for the vibration field.
	preference.DefaultVibration = preferenceDescVibration.Default.(bool)
	reminderMixin := schema.Reminder{}.Mixin()
	reminderMixinFields0 := reminderMixin[0].Fields()
	_ = reminderMixinFields0
	reminderFields := schema.Reminder{}.Fields()
	_ = reminderFields
	// reminderDescCreatedAt is the schema descriptor for created_at field.
	reminderDescCreatedAt := reminderMixinFields0[0].Descriptor()
	// reminder.DefaultCreatedAt holds the default value on creation for the created_at field.
	reminder.DefaultCreatedAt = reminderDescCreatedAt.Default.(func() time.Time)
	// reminderDescReferenceID is the schema descriptor for reference_id field.
	reminderDescReferenceID := reminderFields[1].Descriptor()
	// reminder.ReferenceIDValidator is a validator for the "reference_id" field. It is called by the builders before save.
	reminder.ReferenceIDValidator = reminderDescReferenceID.Validators[0].(func(string) error)
	// reminderDescMessage is the schema descriptor for message field.
	reminderDescMessage := reminderFields[4].Descriptor()
	// reminder.MessageValidator is a validator for the "message" field. It is called by the builders before save.
	reminder.MessageValidator = func() func(string) error {
		validators := reminderDescMessage.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(message string) error {
			for _, fn := range fns {
				if err := fn(message); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// reminderDescSent is the schema descriptor for sent field.
	reminderDescSent := reminderFields[5].Descriptor()
	// reminder.DefaultSent holds the default value on creation for the sent field.
	reminder.DefaultSent = reminderDescSent.Default.(bool)
}
