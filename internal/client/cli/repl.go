package cli

import (
	"context"
	"strings"

	"github.com/reda-h/wellness-companion/internal/session"
)

// Run starts the read-eval-print loop. It exits on EOF or when the user
// types "quit". Command errors are printed inline and the loop continues;
// the user may retry indefinitely.
func (a *App) Run(ctx context.Context) {
	a.printf("Wellness Companion\n")
	for {
		a.printf("wellness [%s]> ", a.gate.State())
		if !a.in.Scan() {
			return
		}
		parts := strings.Fields(a.in.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if cmd == "quit" || cmd == "exit" {
			return
		}
		if cmd == "help" {
			a.printHelp()
			continue
		}

		switch a.gate.State() {
		case session.StateLanding:
			if cmd == "begin" {
				a.begin()
			} else {
				a.printf("Type 'begin' to start, or 'quit'.\n")
			}

		case session.StateLogin:
			switch cmd {
			case "signup":
				a.signUp(ctx)
			case "signin", "login":
				a.signIn(ctx)
			default:
				a.printf("Type 'signin' or 'signup'.\n")
			}

		case session.StateDashboard:
			a.dashboardCommand(ctx, cmd, args)
		}
	}
}

func (a *App) dashboardCommand(ctx context.Context, cmd string, args []string) {
	arg := ""
	if len(args) > 0 {
		arg = args[0]
	}

	switch cmd {
	case "plan":
		a.showPlan()
	case "trimester":
		a.switchTrimester(arg)
	case "set":
		a.setActivity(arg)
	case "note":
		a.setNotes(arg)
	case "done":
		a.toggleDone(arg)
	case "complete":
		a.completeWeek()
	case "history":
		a.showHistory()
	case "delete":
		a.deleteHistory(arg)
	case "exercises":
		a.showExercises()
	case "toggle":
		a.toggleExercise(arg)
	case "reset":
		a.resetProgress()
	case "chat":
		a.chat(ctx, strings.Join(args, " "))
	case "logout":
		a.logout()
	default:
		a.printf("Unknown command %q. Type 'help'.\n", cmd)
	}
}

func (a *App) printHelp() {
	switch a.gate.State() {
	case session.StateLanding:
		a.printf("Commands: begin, quit\n")
	case session.StateLogin:
		a.printf("Commands: signin, signup, quit\n")
	case session.StateDashboard:
		a.printf("Commands: plan, trimester <n>, set <day>, note <day>, done <day>, complete, history, delete <id>, exercises, toggle <id>, reset, chat <message>, logout, quit\n")
	}
}
