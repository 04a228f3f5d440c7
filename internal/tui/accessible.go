package tui

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/mrz1836/tenets/internal/errors"
	"github.com/mrz1836/tenets/internal/picker"
)

// Prompter asks the user one question at a time.
type Prompter interface {
	Select(title string, options []Option) (string, error)
	Input(prompt, defaultValue string, validate func(string) error) (string, error)
	Confirm(message string, defaultYes bool) (bool, error)
	Note(title, message string) error
}

// HuhPrompter implements Prompter with the Huh menus in menus.go.
type HuhPrompter struct {
	Config *MenuConfig
}

// NewHuhPrompter creates a HuhPrompter. A nil cfg uses NewMenuConfig().
func NewHuhPrompter(cfg *MenuConfig) *HuhPrompter {
	if cfg == nil {
		cfg = NewMenuConfig()
	}
	return &HuhPrompter{Config: cfg}
}

// Select implements Prompter.
func (p *HuhPrompter) Select(title string, options []Option) (string, error) {
	return SelectWithConfig(title, options, p.Config)
}

// Input implements Prompter.
func (p *HuhPrompter) Input(prompt, defaultValue string, validate func(string) error) (string, error) {
	return InputWithValidationConfig(prompt, defaultValue, validate, p.Config)
}

// Confirm implements Prompter.
func (p *HuhPrompter) Confirm(message string, defaultYes bool) (bool, error) {
	return ConfirmWithConfig(message, defaultYes, p.Config)
}

// Note implements Prompter.
func (p *HuhPrompter) Note(title, message string) error {
	return NoteWithConfig(title, message, p.Config)
}

// RunAccessible walks the session as a sequence of prompts: the religion
// icon and name when founding, one belief per slot, then a confirmation.
// It returns errors.ErrPickerCanceled if the user declines the confirmation,
// cancels any prompt, or a slot has no belief left to choose.
func RunAccessible(ctx context.Context, session *picker.Session, prompter Prompter) error {
	if err := promptReligion(session, prompter); err != nil {
		return canceled(err)
	}

	for _, slot := range session.Slots() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := session.SelectSlot(slot.Index); err != nil {
			return err
		}
		candidates := session.Candidates()
		if len(candidates) == 0 {
			msg := fmt.Sprintf("No %s belief is left to choose, so this cannot be confirmed.", picker.CategoryTitle(slot.Category))
			if err := prompter.Note(session.ConfirmLabel(), msg); err != nil {
				return canceled(err)
			}
			return errors.ErrPickerCanceled
		}
		options := make([]Option, 0, len(candidates))
		for _, b := range candidates {
			options = append(options, Option{Label: b.Name, Description: b.Effects(), Value: b.Name})
		}
		title := fmt.Sprintf("Belief %d of %d: %s", slot.Index+1, len(session.Slots()), slot.Label())
		name, err := prompter.Select(title, options)
		if err != nil {
			return canceled(err)
		}
		if err := session.ChooseByName(name); err != nil {
			return err
		}
	}

	ok, err := prompter.Confirm(session.ConfirmLabel()+"?", true)
	if err != nil {
		return canceled(err)
	}
	if !ok {
		return errors.ErrPickerCanceled
	}
	return session.Confirm(ctx)
}

// promptReligion asks for the icon and display name when founding.
func promptReligion(session *picker.Session, prompter Prompter) error {
	if session.Mode() != picker.ModeFound {
		return nil
	}

	var options []Option
	for _, icon := range session.ReligionIcons() {
		if icon.Available {
			options = append(options, Option{Label: icon.Name, Value: icon.Name})
		}
	}
	if len(options) == 0 {
		return errors.ErrReligionIconUnavailable
	}

	icon, err := prompter.Select("Choose a religion to found", options)
	if err != nil {
		return err
	}
	if err := session.SelectIcon(icon); err != nil {
		return err
	}

	name, err := prompter.Input("Choose a name for your religion", icon, func(s string) error {
		if s == icon {
			return nil
		}
		return session.ValidateName(s)
	})
	if err != nil {
		return err
	}
	if name != icon && !session.Rename(name) {
		return fmt.Errorf("%w: %q", errors.ErrReligionNameTaken, name)
	}
	return nil
}

// canceled maps a prompt cancellation to ErrPickerCanceled.
func canceled(err error) error {
	if stderrors.Is(err, ErrMenuCanceled) {
		return errors.ErrPickerCanceled
	}
	return err
}
