// Package wizard drives the four-step listing-creation flow: photos,
// details, location, plan, then a simulated asynchronous publish. The
// wizard owns its draft exclusively; persistence of the published
// listing is the caller's concern.
package wizard

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"techmarket/internal/catalog"
)

// Step is a wizard position.
type Step int

const (
	StepPhotos   Step = 1
	StepDetails  Step = 2
	StepLocation Step = 3
	StepPlan     Step = 4
)

const stepCount = 4

// MaxImages is the photo cap per listing.
const MaxImages = 10

var (
	// ErrGateNotMet is returned by Advance when the current step's
	// fields are incomplete. The caller disables its continue control
	// instead of surfacing this further.
	ErrGateNotMet = errors.New("step requirements not met")

	// ErrNotPublishing guards FinishPublish against being called out of
	// order.
	ErrNotPublishing = errors.New("no publish in progress")
)

// State is the wizard lifecycle beyond the numbered steps.
type State string

const (
	StateEditing    State = "editing"
	StatePublishing State = "publishing"
	StatePublished  State = "published"
)

// Wizard is the listing-creation state machine. One wizard exists per
// active post screen; Abandon invalidates any timers it scheduled.
type Wizard struct {
	step  Step
	state State
	epoch int

	Images      []string
	Title       string
	Category    string
	Condition   catalog.Condition
	Price       string // numeric string, validated when the listing is built
	Description string
	Location    string
	Plan        catalog.Plan
}

// New returns a wizard at the photo step with the free plan selected.
func New() *Wizard {
	return &Wizard{step: StepPhotos, state: StateEditing, Plan: catalog.PlanFree}
}

func (w *Wizard) Step() Step   { return w.step }
func (w *Wizard) State() State { return w.state }

// AddImage appends an uploaded image reference. Returns false once the
// cap is reached; callers stop offering the upload control at the cap.
func (w *Wizard) AddImage(ref string) bool {
	if len(w.Images) >= MaxImages {
		return false
	}
	w.Images = append(w.Images, ref)
	return true
}

// RemoveImage drops the image at index i, preserving order.
func (w *Wizard) RemoveImage(i int) {
	if i < 0 || i >= len(w.Images) {
		return
	}
	w.Images = append(w.Images[:i], w.Images[i+1:]...)
}

// CanAdvance reports whether the current step's gate holds. Pure; the
// gate stays satisfied until a relevant field is cleared.
func (w *Wizard) CanAdvance() bool {
	switch w.step {
	case StepPhotos:
		return len(w.Images) > 0
	case StepDetails:
		return !blank(w.Title) && !blank(w.Category) &&
			w.Condition != "" && !blank(w.Price) && !blank(w.Description)
	case StepLocation:
		return !blank(w.Location)
	case StepPlan:
		// The plan step has no field gate; it ends in an explicit
		// Publish, not an Advance.
		return false
	}
	return false
}

// Advance moves to the next step when the gate holds. State is unchanged
// on error.
func (w *Wizard) Advance() error {
	if w.state != StateEditing {
		return fmt.Errorf("advance while %s: %w", w.state, ErrGateNotMet)
	}
	if w.step >= StepPlan || !w.CanAdvance() {
		return ErrGateNotMet
	}
	w.step++
	return nil
}

// Back moves to the previous step. Entered data at any step is kept.
func (w *Wizard) Back() {
	if w.state == StateEditing && w.step > StepPhotos {
		w.step--
	}
}

// StartPublish transitions to Publishing and returns a liveness token.
// The caller runs the asynchronous publish effect and passes the token
// back to FinishPublish; a wizard reset in the meantime invalidates it,
// so a late timer cannot act on torn-down state.
func (w *Wizard) StartPublish() int {
	w.state = StatePublishing
	w.epoch++
	return w.epoch
}

// FinishPublish completes a publish started with the same token.
// Stale tokens are ignored without error side effects on state.
func (w *Wizard) FinishPublish(token int) error {
	if w.state != StatePublishing || token != w.epoch {
		return ErrNotPublishing
	}
	w.state = StatePublished
	return nil
}

// TokenValid reports whether a previously issued token still refers to
// this wizard generation. Used to guard the post-publish redirect timer.
func (w *Wizard) TokenValid(token int) bool {
	return token == w.epoch
}

// Abandon discards the draft and invalidates outstanding tokens.
func (w *Wizard) Abandon() {
	w.epoch++
	*w = Wizard{step: StepPhotos, state: StateEditing, Plan: catalog.PlanFree, epoch: w.epoch}
}

// Listing materializes the draft as a product. Price parses as a
// non-negative number; a draft that passed the details gate can still
// fail here if the price text is not numeric.
func (w *Wizard) Listing(id string, seller catalog.User) (catalog.Product, error) {
	price, err := strconv.ParseFloat(strings.TrimSpace(w.Price), 64)
	if err != nil {
		return catalog.Product{}, fmt.Errorf("parse price %q: %w", w.Price, err)
	}
	if price < 0 {
		return catalog.Product{}, fmt.Errorf("negative price %v", price)
	}
	return catalog.Product{
		ID:          id,
		Title:       strings.TrimSpace(w.Title),
		Price:       price,
		Category:    w.Category,
		Condition:   w.Condition,
		Description: strings.TrimSpace(w.Description),
		Images:      append([]string(nil), w.Images...),
		Location:    strings.TrimSpace(w.Location),
		SellerID:    seller.ID,
		PostedTime:  "just now",
		Plan:        w.Plan,
	}, nil
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
