package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/reda-h/wellness-companion/internal/content"
	"github.com/reda-h/wellness-companion/internal/dto"
	"github.com/reda-h/wellness-companion/internal/localstore"
	"github.com/reda-h/wellness-companion/internal/planner"
	"github.com/reda-h/wellness-companion/internal/session"
)

// wellnessAPI is the server surface the app needs. The real client.Client
// satisfies it; tests provide a stub.
type wellnessAPI interface {
	Register(ctx context.Context, name, mail, password string) (dto.PublicUser, error)
	Login(ctx context.Context, mail, password string) (dto.PublicUser, error)
	Chat(ctx context.Context, message string) (string, error)
}

// App drives the session gate and the planner from terminal input.
type App struct {
	api     wellnessAPI
	store   localstore.Store
	gate    session.Gate
	planner *planner.Planner
	in      *bufio.Scanner
	out     io.Writer
}

// NewApp wires an App over the given API, local store and I/O streams.
func NewApp(api wellnessAPI, store localstore.Store, in io.Reader, out io.Writer) *App {
	return &App{
		api:   api,
		store: store,
		in:    bufio.NewScanner(in),
		out:   out,
	}
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

// prompt reads one line after printing a label. Returns "" on EOF.
func (a *App) prompt(label string) string {
	a.printf("%s: ", label)
	if !a.in.Scan() {
		return ""
	}
	return strings.TrimSpace(a.in.Text())
}

func (a *App) errorf(err error) {
	a.printf("Error: %v\n", err)
}

// begin leaves the welcome screen.
func (a *App) begin() {
	if err := a.gate.Begin(); err != nil {
		a.errorf(err)
		return
	}
	a.printf("Welcome to your wellness companion. Sign in or sign up to continue.\n")
}

func (a *App) setMode(mode session.Mode) error {
	if a.gate.Mode() == mode {
		return nil
	}
	return a.gate.ToggleMode()
}

// signUp registers a new account and signs in on success.
func (a *App) signUp(ctx context.Context) {
	if err := a.setMode(session.ModeSignUp); err != nil {
		a.errorf(err)
		return
	}

	name := a.prompt("Name")
	mail := a.prompt("Email")
	password := a.prompt("Password")
	confirm := a.prompt("Confirm password")
	if password != confirm {
		a.printf("Error: Passwords do not match.\n")
		return
	}

	user, err := a.api.Register(ctx, name, mail, password)
	if err != nil {
		a.errorf(err)
		return
	}
	a.enterDashboard(user)
	a.printf("Welcome! Account created successfully.\n")
}

// signIn authenticates an existing account.
func (a *App) signIn(ctx context.Context) {
	if err := a.setMode(session.ModeSignIn); err != nil {
		a.errorf(err)
		return
	}

	mail := a.prompt("Email")
	password := a.prompt("Password")

	user, err := a.api.Login(ctx, mail, password)
	if err != nil {
		a.errorf(err)
		return
	}
	a.enterDashboard(user)
	a.printf("Welcome back, %s!\n", user.Name)
}

func (a *App) enterDashboard(user dto.PublicUser) {
	if err := a.gate.Authenticated(user.Name, user.Email); err != nil {
		a.errorf(err)
		return
	}
	a.planner = planner.New(a.store, user.Email)
	if err := a.planner.LoadWeek(1); err != nil {
		a.errorf(err)
	}
}

// switchTrimester loads the planner slot for another trimester.
func (a *App) switchTrimester(arg string) {
	trimester, err := strconv.Atoi(arg)
	if err != nil {
		a.printf("Usage: trimester <1|2|3>\n")
		return
	}
	if err := a.planner.LoadWeek(trimester); err != nil {
		a.errorf(err)
		return
	}
	a.showPlan()
}

func (a *App) showPlan() {
	guide, _ := content.Guide(a.planner.Trimester())
	a.printf("Trimester %d (%s) — Week %d\n", a.planner.Trimester(), guide.Range, a.planner.Week())
	a.printf("Focus: %s\n", guide.Focus)
	plan := a.planner.Plan()
	for _, day := range content.Days {
		entry := plan[day]
		mark := " "
		if entry.Done {
			mark = "x"
		}
		a.printf("  [%s] %s  %-16s %s\n", mark, day, entry.Activity, entry.Notes)
	}
}

func (a *App) setActivity(day string) {
	activity := a.prompt("Activity")
	if err := a.planner.SetActivity(day, activity); err != nil {
		a.errorf(err)
	}
}

func (a *App) setNotes(day string) {
	notes := a.prompt("Notes")
	if err := a.planner.SetNotes(day, notes); err != nil {
		a.errorf(err)
	}
}

func (a *App) toggleDone(day string) {
	if err := a.planner.ToggleDone(day); err != nil {
		a.errorf(err)
	}
}

func (a *App) completeWeek() {
	record, err := a.planner.CompleteWeek()
	if err != nil {
		a.errorf(err)
		return
	}
	a.printf("Week %d saved successfully!\n", record.Week)
}

func (a *App) showHistory() {
	history := a.planner.History()
	if len(history) == 0 {
		a.printf("No completed weeks yet.\n")
		return
	}
	for _, record := range history {
		done := 0
		for _, entry := range record.Data {
			if entry.Done {
				done++
			}
		}
		a.printf("  %s  Week %d (Trimester %d, %s) — %d/7 done\n",
			record.ID, record.Week, record.Trimester, record.Date, done)
	}
}

// deleteHistory asks for confirmation first; the removal is irreversible.
func (a *App) deleteHistory(id string) {
	answer := a.prompt("Delete this entry? This action cannot be undone (y/N)")
	if !strings.EqualFold(answer, "y") {
		a.printf("Cancelled.\n")
		return
	}
	if err := a.planner.DeleteHistoryEntry(id); err != nil {
		a.errorf(err)
		return
	}
	a.printf("Entry deleted successfully\n")
}

func (a *App) showExercises() {
	for _, ex := range content.Exercises {
		mark := " "
		if a.planner.IsCompleted(ex.ID) {
			mark = "x"
		}
		a.printf("  [%s] %d. %s (%s, %s Trimester, %s) — %s\n",
			mark, ex.ID, ex.Title, ex.Category, ex.Trimester, ex.Duration, ex.Focus)
	}
	a.printf("%d / %d completed\n", len(a.planner.CompletedExercises()), len(content.Exercises))
}

func (a *App) toggleExercise(arg string) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		a.printf("Usage: toggle <exercise id>\n")
		return
	}
	if err := a.planner.ToggleExercise(id); err != nil {
		a.errorf(err)
	}
}

// resetProgress wipes all local state for the current user after an
// explicit confirmation.
func (a *App) resetProgress() {
	answer := a.prompt("This will wipe all your planner data and exercise history. Are you sure? (y/N)")
	if !strings.EqualFold(answer, "y") {
		a.printf("Cancelled.\n")
		return
	}
	if err := a.planner.ResetProgress(); err != nil {
		a.errorf(err)
		return
	}
	a.printf("Progress reset.\n")
}

func (a *App) chat(ctx context.Context, message string) {
	if strings.TrimSpace(message) == "" {
		a.printf("Usage: chat <message>\n")
		return
	}
	reply, err := a.api.Chat(ctx, message)
	if err != nil {
		a.errorf(err)
		return
	}
	a.printf("assistant> %s\n", reply)
}

func (a *App) logout() {
	if err := a.gate.Logout(); err != nil {
		a.errorf(err)
		return
	}
	a.planner = nil
	a.printf("Signed out. Your saved progress stays on this device.\n")
}
