package wizard

import (
	"testing"

	"github.com/stretchr/testify/require"

	"techmarket/internal/catalog"
)

func draftDetails(w *Wizard) {
	w.Title = "iPhone 14 Pro"
	w.Category = catalog.CategoryPhones
	w.Condition = catalog.ConditionLikeNew
	w.Price = "899"
	w.Description = "Barely used, box included."
}

func TestNewWizardDefaults(t *testing.T) {
	t.Parallel()
	w := New()
	require.Equal(t, StepPhotos, w.Step())
	require.Equal(t, StateEditing, w.State())
	require.Equal(t, catalog.PlanFree, w.Plan)
	require.False(t, w.CanAdvance())
}

func TestAdvanceBlockedWithoutPhotos(t *testing.T) {
	t.Parallel()
	w := New()
	err := w.Advance()
	require.ErrorIs(t, err, ErrGateNotMet)
	require.Equal(t, StepPhotos, w.Step())
}

func TestPhotoGateOpensWithOneImage(t *testing.T) {
	t.Parallel()
	w := New()
	require.True(t, w.AddImage("a.jpg"))
	require.True(t, w.CanAdvance())
	require.NoError(t, w.Advance())
	require.Equal(t, StepDetails, w.Step())
}

func TestImageCap(t *testing.T) {
	t.Parallel()
	w := New()
	for i := 0; i < MaxImages; i++ {
		require.True(t, w.AddImage("a.jpg"))
	}
	require.False(t, w.AddImage("one-too-many.jpg"))
	require.Len(t, w.Images, MaxImages)
}

func TestRemoveImagePreservesOrder(t *testing.T) {
	t.Parallel()
	w := New()
	w.AddImage("a.jpg")
	w.AddImage("b.jpg")
	w.AddImage("c.jpg")
	w.RemoveImage(1)
	require.Equal(t, []string{"a.jpg", "c.jpg"}, w.Images)

	// out-of-range indexes are ignored
	w.RemoveImage(-1)
	w.RemoveImage(9)
	require.Len(t, w.Images, 2)
}

func TestDetailsGateRequiresEveryField(t *testing.T) {
	t.Parallel()
	w := New()
	w.AddImage("a.jpg")
	require.NoError(t, w.Advance())

	draftDetails(w)
	require.True(t, w.CanAdvance())

	w.Condition = ""
	require.False(t, w.CanAdvance())
	require.ErrorIs(t, w.Advance(), ErrGateNotMet)
	require.Equal(t, StepDetails, w.Step())

	w.Condition = catalog.ConditionUsed
	w.Title = "   "
	require.False(t, w.CanAdvance())
}

func TestBackPreservesFields(t *testing.T) {
	t.Parallel()
	w := New()
	w.AddImage("a.jpg")
	require.NoError(t, w.Advance())
	draftDetails(w)

	w.Back()
	require.Equal(t, StepPhotos, w.Step())
	require.Equal(t, "iPhone 14 Pro", w.Title)
	require.Equal(t, []string{"a.jpg"}, w.Images)

	// back from the first step is a no-op
	w.Back()
	require.Equal(t, StepPhotos, w.Step())
}

func toPlanStep(t *testing.T, w *Wizard) {
	t.Helper()
	w.AddImage("a.jpg")
	require.NoError(t, w.Advance())
	draftDetails(w)
	require.NoError(t, w.Advance())
	w.Location = "San Francisco, CA"
	require.NoError(t, w.Advance())
	require.Equal(t, StepPlan, w.Step())
}

func TestPlanStepEndsInPublishNotAdvance(t *testing.T) {
	t.Parallel()
	w := New()
	toPlanStep(t, w)
	require.False(t, w.CanAdvance())
	require.ErrorIs(t, w.Advance(), ErrGateNotMet)
}

func TestPublishLifecycle(t *testing.T) {
	t.Parallel()
	w := New()
	toPlanStep(t, w)
	w.Plan = catalog.PlanPremium

	token := w.StartPublish()
	require.Equal(t, StatePublishing, w.State())
	require.True(t, w.TokenValid(token))

	require.NoError(t, w.FinishPublish(token))
	require.Equal(t, StatePublished, w.State())

	// completing twice is rejected
	require.ErrorIs(t, w.FinishPublish(token), ErrNotPublishing)
}

func TestFinishPublishIgnoresStaleToken(t *testing.T) {
	t.Parallel()
	w := New()
	toPlanStep(t, w)

	stale := w.StartPublish()
	w.Abandon()
	require.ErrorIs(t, w.FinishPublish(stale), ErrNotPublishing)
	require.Equal(t, StateEditing, w.State())
	require.False(t, w.TokenValid(stale))
}

func TestAbandonResetsDraft(t *testing.T) {
	t.Parallel()
	w := New()
	toPlanStep(t, w)
	w.Plan = catalog.PlanFeatured

	w.Abandon()
	require.Equal(t, StepPhotos, w.Step())
	require.Equal(t, StateEditing, w.State())
	require.Empty(t, w.Images)
	require.Empty(t, w.Title)
	require.Equal(t, catalog.PlanFree, w.Plan)
}

func TestListingFromDraft(t *testing.T) {
	t.Parallel()
	w := New()
	toPlanStep(t, w)
	w.Plan = catalog.PlanPremium

	seller := catalog.User{ID: "1", Name: "Alex Rivera"}
	p, err := w.Listing("new-id", seller)
	require.NoError(t, err)
	require.Equal(t, "new-id", p.ID)
	require.Equal(t, "iPhone 14 Pro", p.Title)
	require.Equal(t, 899.0, p.Price)
	require.Equal(t, catalog.CategoryPhones, p.Category)
	require.Equal(t, "1", p.SellerID)
	require.Equal(t, catalog.PlanPremium, p.Plan)
	require.Equal(t, "just now", p.PostedTime)
}

func TestListingRejectsBadPrice(t *testing.T) {
	t.Parallel()
	w := New()
	toPlanStep(t, w)

	w.Price = "not a number"
	_, err := w.Listing("id", catalog.User{ID: "1"})
	require.Error(t, err)

	w.Price = "-5"
	_, err = w.Listing("id", catalog.User{ID: "1"})
	require.Error(t, err)
}
