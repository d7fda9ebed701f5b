// Package tracker owns the per-client application state: the current
// measurement, unit system, theme, last computed result, generated content
// and the chat transcript. It is the decision point that substitutes local
// fallback content when remote generation fails, so the watch always has
// something to show.
package tracker

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"wearbmi/internal/ai"
	"wearbmi/internal/analysis"
	"wearbmi/internal/bmi"
	applog "wearbmi/internal/log"
	"wearbmi/internal/store"
	"wearbmi/models"
)

// Defaults shown on a fresh watch: 170 cm / 70 kg, metric, dark theme.
const (
	defaultHeight = 170.0
	defaultWeight = 70.0
)

var (
	// ErrBusy is returned when a generation operation of the same kind is
	// already running for this client.
	ErrBusy = errors.New("tracker: generation already in progress")

	// ErrNoResult is returned when an operation needs a calculated BMI
	// result and none exists yet.
	ErrNoResult = errors.New("tracker: no BMI result calculated")

	// ErrEmptyMessage is returned for blank chat input.
	ErrEmptyMessage = errors.New("tracker: chat message is empty")
)

// Generator is the remote text-generation surface the tracker consumes.
// *ai.Client satisfies it.
type Generator interface {
	FetchAnalysis(ctx context.Context, value float64, category bmi.Category, heightCm, weightKg float64) (string, error)
	FetchDietTips(ctx context.Context, value float64, category bmi.Category, goal string) ([]string, error)
	FetchMealPlan(ctx context.Context, value float64, category bmi.Category, goal string) ([]string, error)
	Chat(ctx context.Context, message string, value float64, category bmi.Category) (string, error)
}

// Result is an immutable computed BMI snapshot. Height and weight keep the
// values as entered in the active unit system.
type Result struct {
	Height   float64
	Weight   float64
	BMI      float64
	Category bmi.Category
}

// ChatMessage is one entry of the append-only transcript.
type ChatMessage struct {
	Text     string    `json:"text"`
	FromUser bool      `json:"from_user"`
	At       time.Time `json:"at"`
}

type opKind int

const (
	opAnalysis opKind = iota
	opDietTips
	opMealPlan
	opChat
)

// Tracker holds one client's state. All exported methods are safe for
// concurrent use; the mutex is released while a network call runs, with the
// in-flight set protecting each operation's result slot.
type Tracker struct {
	clientID string
	gen      Generator
	records  store.Store

	mu        sync.Mutex
	height    float64
	weight    float64
	units     bmi.UnitSystem
	darkTheme bool

	result       *Result
	analysisText string
	dietTips     []string
	mealPlan     []string
	chat         []ChatMessage

	inFlight map[opKind]bool
}

// New builds a tracker with the watch defaults.
func New(clientID string, gen Generator, records store.Store) *Tracker {
	return &Tracker{
		clientID:  clientID,
		gen:       gen,
		records:   records,
		height:    defaultHeight,
		weight:    defaultWeight,
		units:     bmi.Metric,
		darkTheme: true,
		inFlight:  make(map[opKind]bool),
	}
}

// Measurement reports the current height, weight and unit system.
func (t *Tracker) Measurement() (height, weight float64, units bmi.UnitSystem) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.height, t.weight, t.units
}

// SetMeasurement stores new height/weight values in the active unit system.
// Values are not validated here; a degenerate measurement produces a
// degenerate BMI rather than an error.
func (t *Tracker) SetMeasurement(height, weight float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.height = height
	t.weight = weight
}

// ToggleUnits flips between metric and imperial, converting the stored
// values so the measurement stays physically the same.
func (t *Tracker) ToggleUnits() (height, weight float64, units bmi.UnitSystem) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.units == bmi.Metric {
		t.height /= bmi.CentimetersPerInch
		t.weight /= bmi.KilogramsPerPound
		t.units = bmi.Imperial
	} else {
		t.height *= bmi.CentimetersPerInch
		t.weight *= bmi.KilogramsPerPound
		t.units = bmi.Metric
	}
	return t.height, t.weight, t.units
}

// ToggleTheme flips the dark/light preference and reports the new state.
func (t *Tracker) ToggleTheme() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.darkTheme = !t.darkTheme
	return t.darkTheme
}

// DarkTheme reports the current theme preference.
func (t *Tracker) DarkTheme() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.darkTheme
}

// Calculate computes BMI from the current measurement and stores the result.
// Calculation is explicit: changing the measurement alone never recomputes.
func (t *Tracker) Calculate() Result {
	t.mu.Lock()
	defer t.mu.Unlock()

	var value float64
	if t.units == bmi.Imperial {
		value = bmi.CalculateImperial(t.height, t.weight)
	} else {
		value = bmi.Calculate(t.height, t.weight)
	}

	res := Result{
		Height:   t.height,
		Weight:   t.weight,
		BMI:      value,
		Category: bmi.Classify(value),
	}
	t.result = &res
	return res
}

// Result returns the last computed result, if any.
func (t *Tracker) Result() (Result, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.result == nil {
		return Result{}, false
	}
	return *t.result, true
}

// SaveRecord snapshots the last result into the record store.
func (t *Tracker) SaveRecord(ctx context.Context) (models.Record, error) {
	res, ok := t.Result()
	if !ok {
		return models.Record{}, ErrNoResult
	}

	rec := models.Record{
		ClientID:   t.clientID,
		Height:     res.Height,
		Weight:     res.Weight,
		BMI:        res.BMI,
		Category:   res.Category.Label(),
		RecordedAt: time.Now().UTC(),
	}
	return t.records.Append(ctx, rec)
}

// Records lists the saved history in insertion order.
func (t *Tracker) Records(ctx context.Context) ([]models.Record, error) {
	return t.records.List(ctx, t.clientID)
}

// GenerateAnalysis fetches the health analysis for the last result,
// substituting the canned text on any failure. fromAI reports whether the
// text came from the remote service; the watch renders both identically.
func (t *Tracker) GenerateAnalysis(ctx context.Context) (text string, fromAI bool, err error) {
	res, ok := t.Result()
	if !ok {
		return "", false, ErrNoResult
	}
	if err := t.begin(opAnalysis); err != nil {
		return "", false, err
	}
	defer t.end(opAnalysis)

	text, genErr := t.gen.FetchAnalysis(ctx, res.BMI, res.Category, res.Height, res.Weight)
	fromAI = genErr == nil
	if genErr != nil {
		applog.Warn(ctx, "analysis generation failed, using canned text",
			"kind", string(ai.KindOf(genErr)), "error", genErr)
		text = analysis.Generate(res.BMI, res.Category)
	}

	t.mu.Lock()
	t.analysisText = text
	t.mu.Unlock()
	return text, fromAI, nil
}

// GenerateDietTips fetches diet tips, substituting the placeholder list for
// the goal (or category) on any failure, including empty extraction.
func (t *Tracker) GenerateDietTips(ctx context.Context, goal analysis.DietGoal) (tips []string, fromAI bool, err error) {
	res, ok := t.Result()
	if !ok {
		return nil, false, ErrNoResult
	}
	if err := t.begin(opDietTips); err != nil {
		return nil, false, err
	}
	defer t.end(opDietTips)

	tips, genErr := t.gen.FetchDietTips(ctx, res.BMI, res.Category, string(goal))
	fromAI = genErr == nil
	if genErr != nil {
		applog.Warn(ctx, "diet tip generation failed, using placeholder tips",
			"kind", string(ai.KindOf(genErr)), "error", genErr)
		if goal != "" {
			tips = analysis.PlaceholderDietTipsForGoal(goal)
		} else {
			tips = analysis.PlaceholderDietTips(res.Category)
		}
	}

	t.mu.Lock()
	t.dietTips = tips
	t.mu.Unlock()
	return tips, fromAI, nil
}

// GenerateMealPlan fetches a four-slot meal plan with the same fallback
// policy as GenerateDietTips.
func (t *Tracker) GenerateMealPlan(ctx context.Context, goal analysis.MealGoal) (meals []string, fromAI bool, err error) {
	res, ok := t.Result()
	if !ok {
		return nil, false, ErrNoResult
	}
	if err := t.begin(opMealPlan); err != nil {
		return nil, false, err
	}
	defer t.end(opMealPlan)

	meals, genErr := t.gen.FetchMealPlan(ctx, res.BMI, res.Category, string(goal))
	fromAI = genErr == nil
	if genErr != nil {
		applog.Warn(ctx, "meal plan generation failed, using placeholder meals",
			"kind", string(ai.KindOf(genErr)), "error", genErr)
		if goal != "" {
			meals = analysis.PlaceholderMealPlanForGoal(goal)
		} else {
			meals = analysis.PlaceholderMealPlan(res.Category)
		}
	}

	t.mu.Lock()
	t.mealPlan = meals
	t.mu.Unlock()
	return meals, fromAI, nil
}

// SendChatMessage appends the user's message to the transcript, asks the
// assistant and appends its reply. On failure the fixed fallback sentence is
// appended instead; the caller never sees a generation error.
func (t *Tracker) SendChatMessage(ctx context.Context, message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", ErrEmptyMessage
	}

	res, ok := t.Result()
	if !ok {
		return "", ErrNoResult
	}
	if err := t.begin(opChat); err != nil {
		return "", err
	}
	defer t.end(opChat)

	now := time.Now().UTC()
	t.mu.Lock()
	t.chat = append(t.chat, ChatMessage{Text: message, FromUser: true, At: now})
	t.mu.Unlock()

	reply, genErr := t.gen.Chat(ctx, message, res.BMI, res.Category)
	if genErr != nil {
		applog.Warn(ctx, "chat generation failed, using fallback reply",
			"kind", string(ai.KindOf(genErr)), "error", genErr)
		reply = analysis.ChatFallback
	}

	t.mu.Lock()
	t.chat = append(t.chat, ChatMessage{Text: reply, FromUser: false, At: time.Now().UTC()})
	t.mu.Unlock()
	return reply, nil
}

// ChatHistory returns a copy of the append-only transcript.
func (t *Tracker) ChatHistory() []ChatMessage {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]ChatMessage, len(t.chat))
	copy(out, t.chat)
	return out
}

// SuggestedQuestions returns quick-tap chat prompts for the current
// category, defaulting to the Normal set before any calculation.
func (t *Tracker) SuggestedQuestions() []string {
	category := bmi.Normal
	if res, ok := t.Result(); ok {
		category = res.Category
	}
	return analysis.SuggestedQuestions(category)
}

// AnalysisText returns the last stored analysis, generated or canned.
func (t *Tracker) AnalysisText() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.analysisText
}

// DietTips returns the last stored tip list.
func (t *Tracker) DietTips() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]string, len(t.dietTips))
	copy(out, t.dietTips)
	return out
}

// MealPlan returns the last stored meal plan.
func (t *Tracker) MealPlan() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]string, len(t.mealPlan))
	copy(out, t.mealPlan)
	return out
}

func (t *Tracker) begin(op opKind) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.inFlight[op] {
		return ErrBusy
	}
	t.inFlight[op] = true
	return nil
}

func (t *Tracker) end(op opKind) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.inFlight, op)
}
