package client

import (
	"context"
	"errors"
	"strings"

	"javaconnect/internal/models"
)

// ErrNotLoggedIn gates every mutation on the detail page.
var ErrNotLoggedIn = errors.New("not logged in")

// ErrNotConfirmed is returned when a destructive action's confirmation
// callback declines.
var ErrNotConfirmed = errors.New("action not confirmed")

// FlagState is the per-content flag status. Lookups start Unknown and settle
// to Unflagged or Flagged; a failed lookup stays Unknown so the UI never
// claims "not flagged" off the back of an outage.
type FlagState int

const (
	FlagUnknown FlagState = iota
	FlagUnflagged
	FlagFlagged
)

// ContentRef identifies one flaggable item on the page.
type ContentRef struct {
	Kind FlagTargetKind
	ID   uint
}

// FlagInfo is the resolved flag status for one content item.
type FlagInfo struct {
	State  FlagState
	FlagID uint
}

// ConfirmFunc asks the user to confirm a destructive action. The web UI shows
// a dialog; tests and tools supply their own.
type ConfirmFunc func(prompt string) bool

// QuestionDetail drives the question detail page: the loaded question with
// its threads, per-item flag status, the answer editor and feedback drafts.
type QuestionDetail struct {
	client  *Client
	confirm ConfirmFunc

	Question *models.Question
	flags    map[ContentRef]FlagInfo

	// editingAnswerID selects what SubmitAnswer does: zero creates a new
	// answer, non-zero edits that answer.
	editingAnswerID uint
	AnswerDraft     string

	// FeedbackDrafts holds in-progress feedback text per answer id.
	FeedbackDrafts map[uint]string

	// expandedAnswerID is the one answer whose feedback thread is open,
	// or zero when all are collapsed.
	expandedAnswerID uint

	// Flag modal state.
	flagTarget *ContentRef
	FlagReason string
}

// NewQuestionDetail creates the detail view-model. confirm guards deletes and
// must not be nil.
func NewQuestionDetail(client *Client, confirm ConfirmFunc) *QuestionDetail {
	return &QuestionDetail{
		client:         client,
		confirm:        confirm,
		flags:          make(map[ContentRef]FlagInfo),
		FeedbackDrafts: make(map[uint]string),
	}
}

func (d *QuestionDetail) requireLogin() (*Session, error) {
	session := d.client.Session().Current()
	if session == nil || session.Token == "" {
		return nil, ErrNotLoggedIn
	}
	return session, nil
}

// Load fetches the question and, when logged in, resolves the caller's flag
// status for the question, every answer and every feedback item.
func (d *QuestionDetail) Load(ctx context.Context, questionID uint) error {
	question, err := d.client.GetQuestion(ctx, questionID)
	if err != nil {
		return err
	}
	d.Question = question
	d.flags = make(map[ContentRef]FlagInfo)

	session := d.client.Session().Current()
	if session == nil || session.Token == "" {
		return nil
	}

	d.lookupFlag(ctx, session.User.ID, ContentRef{Kind: FlagQuestion, ID: question.ID})
	for _, answer := range question.Answers {
		d.lookupFlag(ctx, session.User.ID, ContentRef{Kind: FlagAnswer, ID: answer.ID})
		for _, fb := range answer.Feedbacks {
			d.lookupFlag(ctx, session.User.ID, ContentRef{Kind: FlagFeedback, ID: fb.ID})
		}
	}
	return nil
}

// lookupFlag resolves one item's flag status. On lookup failure the entry
// stays Unknown.
func (d *QuestionDetail) lookupFlag(ctx context.Context, userID uint, ref ContentRef) {
	flag, err := d.client.CheckFlag(ctx, userID, ref.Kind, ref.ID)
	if err != nil {
		d.flags[ref] = FlagInfo{State: FlagUnknown}
		return
	}
	if flag == nil {
		d.flags[ref] = FlagInfo{State: FlagUnflagged}
		return
	}
	d.flags[ref] = FlagInfo{State: FlagFlagged, FlagID: flag.ID}
}

// FlagStatus returns the flag status for one content item.
func (d *QuestionDetail) FlagStatus(ref ContentRef) FlagInfo {
	if info, ok := d.flags[ref]; ok {
		return info
	}
	return FlagInfo{State: FlagUnknown}
}

// reload re-fetches the question without disturbing flag state for items
// that survive.
func (d *QuestionDetail) reload(ctx context.Context) error {
	if d.Question == nil {
		return nil
	}
	question, err := d.client.GetQuestion(ctx, d.Question.ID)
	if err != nil {
		return err
	}
	d.Question = question
	return nil
}

// StartEditAnswer switches the answer editor into edit mode for the given
// answer, prefilled with its current content.
func (d *QuestionDetail) StartEditAnswer(answer models.Answer) {
	d.editingAnswerID = answer.ID
	d.AnswerDraft = answer.Content
}

// CancelEditAnswer returns the editor to create mode and clears the draft.
func (d *QuestionDetail) CancelEditAnswer() {
	d.editingAnswerID = 0
	d.AnswerDraft = ""
}

// EditingAnswerID returns the answer being edited, or zero in create mode.
func (d *QuestionDetail) EditingAnswerID() uint {
	return d.editingAnswerID
}

// SubmitAnswer sends the answer draft. In create mode it posts a new answer;
// in edit mode it updates the selected answer. On success the draft is
// cleared, edit mode ends and the question is re-fetched.
func (d *QuestionDetail) SubmitAnswer(ctx context.Context) error {
	session, err := d.requireLogin()
	if err != nil {
		return err
	}
	if d.Question == nil {
		return errors.New("no question loaded")
	}
	if strings.TrimSpace(d.AnswerDraft) == "" {
		return errors.New("answer content is required")
	}

	if d.editingAnswerID != 0 {
		_, err = d.client.EditAnswer(ctx, session.User.ID, d.editingAnswerID, d.AnswerDraft)
	} else {
		_, err = d.client.PostAnswer(ctx, session.User.ID, d.Question.ID, d.AnswerDraft)
	}
	if err != nil {
		return err
	}

	d.AnswerDraft = ""
	d.editingAnswerID = 0
	return d.reload(ctx)
}

// DeleteAnswer removes an answer after confirmation.
func (d *QuestionDetail) DeleteAnswer(ctx context.Context, answerID uint) error {
	session, err := d.requireLogin()
	if err != nil {
		return err
	}
	if !d.confirm("Delete this answer?") {
		return ErrNotConfirmed
	}
	if err := d.client.DeleteAnswer(ctx, session.User.ID, answerID); err != nil {
		return err
	}
	if d.editingAnswerID == answerID {
		d.CancelEditAnswer()
	}
	delete(d.FeedbackDrafts, answerID)
	return d.reload(ctx)
}

// ToggleFeedback expands the feedback thread of one answer, collapsing any
// other open thread. Toggling the open answer collapses it.
func (d *QuestionDetail) ToggleFeedback(answerID uint) {
	if d.expandedAnswerID == answerID {
		d.expandedAnswerID = 0
		return
	}
	d.expandedAnswerID = answerID
}

// ExpandedAnswerID returns the answer with the open feedback thread, or zero.
func (d *QuestionDetail) ExpandedAnswerID() uint {
	return d.expandedAnswerID
}

// SubmitFeedback posts the feedback draft for one answer and clears it.
func (d *QuestionDetail) SubmitFeedback(ctx context.Context, answerID uint) error {
	session, err := d.requireLogin()
	if err != nil {
		return err
	}
	draft := d.FeedbackDrafts[answerID]
	if strings.TrimSpace(draft) == "" {
		return errors.New("feedback content is required")
	}
	if _, err := d.client.PostFeedback(ctx, session.User.ID, answerID, draft); err != nil {
		return err
	}
	delete(d.FeedbackDrafts, answerID)
	return d.reload(ctx)
}

// DeleteFeedback removes a feedback item after confirmation.
func (d *QuestionDetail) DeleteFeedback(ctx context.Context, feedbackID uint) error {
	session, err := d.requireLogin()
	if err != nil {
		return err
	}
	if !d.confirm("Delete this feedback?") {
		return ErrNotConfirmed
	}
	if err := d.client.DeleteFeedback(ctx, session.User.ID, feedbackID); err != nil {
		return err
	}
	return d.reload(ctx)
}

// OpenFlagModal opens the flag dialog for one content item.
func (d *QuestionDetail) OpenFlagModal(ref ContentRef) {
	d.flagTarget = &ref
	d.FlagReason = ""
}

// CloseFlagModal dismisses the flag dialog.
func (d *QuestionDetail) CloseFlagModal() {
	d.flagTarget = nil
	d.FlagReason = ""
}

// FlagModalTarget returns the item the flag dialog is open for, or nil.
func (d *QuestionDetail) FlagModalTarget() *ContentRef {
	return d.flagTarget
}

// SubmitFlagModal sends the flag for the dialog's target and updates the
// local flag map without another lookup.
func (d *QuestionDetail) SubmitFlagModal(ctx context.Context) error {
	session, err := d.requireLogin()
	if err != nil {
		return err
	}
	if d.flagTarget == nil {
		return errors.New("no flag target selected")
	}
	if strings.TrimSpace(d.FlagReason) == "" {
		return errors.New("flag reason is required")
	}

	ref := *d.flagTarget
	flag, err := d.client.SubmitFlag(ctx, session.User.ID, ref.Kind, ref.ID, d.FlagReason)
	if err != nil {
		return err
	}

	d.flags[ref] = FlagInfo{State: FlagFlagged, FlagID: flag.ID}
	d.CloseFlagModal()
	return nil
}

// Unflag removes the caller's flag from one content item. When the item is
// not flagged the call is a no-op.
func (d *QuestionDetail) Unflag(ctx context.Context, ref ContentRef) error {
	session, err := d.requireLogin()
	if err != nil {
		return err
	}

	info := d.FlagStatus(ref)
	if info.State != FlagFlagged || info.FlagID == 0 {
		return nil
	}
	if err := d.client.Unflag(ctx, session.User.ID, info.FlagID); err != nil {
		return err
	}
	d.flags[ref] = FlagInfo{State: FlagUnflagged}
	return nil
}
