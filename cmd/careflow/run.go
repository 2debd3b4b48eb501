package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/resultflow/careflow"
	"github.com/resultflow/careflow/internal/cli"
	"github.com/resultflow/careflow/internal/logging"
	"github.com/resultflow/careflow/internal/presentation/tui"
	"github.com/resultflow/careflow/pkg/domain"
	"github.com/resultflow/careflow/pkg/ports"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start an interactive terminal session",
	Long: `Runs the widget against the terminal: tap options by typing their value,
type anything else as a chat message, and use /commands for cart actions.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !cli.Interactive() {
			return fmt.Errorf("run requires an interactive terminal (use 'serve' for headless hosting)")
		}

		catalogPath, _ := cmd.Flags().GetString("catalog")
		levelFlag, _ := cmd.Flags().GetString("log-level")

		cat, err := cli.LoadCatalog(catalogPath)
		if err != nil {
			return err
		}

		logger := logging.New(cli.ParseLogLevel(levelFlag))
		widget := careflow.New(cat,
			careflow.WithLogger(logger),
			careflow.WithCelebration(tui.NewConfetti(os.Stdout)),
		)
		widget.Open()

		renderer := tui.NewRenderer(os.Stdout)
		reader := bufio.NewReader(os.Stdin)

		fmt.Println("--- Care Assistant (powered by ResultFlow.ai) ---")
		fmt.Println("Commands: /confirm /pick <id> /all /add /cart /next /back /qty <id> <n> /buy /close /quit")

		for {
			widget.Render(renderer)

			fmt.Print("> ")
			line, err := reader.ReadString('\n')
			if err != nil {
				break
			}
			input := strings.TrimSpace(line)
			if input == "/quit" || input == "exit" {
				widget.Close()
				fmt.Println("Bye!")
				break
			}
			dispatch(widget, input)
		}
		return nil
	},
}

func dispatch(widget *careflow.Widget, input string) {
	view := widget.ChatView()

	switch {
	case input == "":
		return
	case input == "/confirm":
		widget.ConfirmConcerns()
	case strings.HasPrefix(input, "/pick "):
		widget.ToggleProduct(strings.TrimSpace(strings.TrimPrefix(input, "/pick ")))
	case input == "/all":
		widget.ToggleSelectAll(displayedProducts(view))
	case input == "/add":
		widget.CommitSelection(displayedProducts(view))
	case input == "/cart":
		widget.OpenCart()
	case input == "/close":
		widget.CloseCart()
	case input == "/next":
		widget.Advance()
	case input == "/back":
		widget.GoBack()
	case input == "/buy":
		widget.CompleteDirectly()
	case strings.HasPrefix(input, "/qty "):
		fields := strings.Fields(strings.TrimPrefix(input, "/qty "))
		if len(fields) == 2 {
			if n, err := strconv.Atoi(fields[1]); err == nil {
				widget.SetQuantity(fields[0], n)
			}
		}
	case isOptionValue(view, input):
		widget.SubmitOption(input)
	default:
		widget.SubmitFreeText(input)
	}
}

// displayedProducts returns the products of the most recent recommendation,
// the candidate list for selection intents.
func displayedProducts(view ports.ChatView) []domain.Product {
	for i := len(view.Messages) - 1; i >= 0; i-- {
		recs := view.Messages[i].Recommendations
		if len(recs) > 0 {
			return recs[len(recs)-1].Products
		}
	}
	return nil
}

func isOptionValue(view ports.ChatView, input string) bool {
	for _, opt := range view.Options {
		if opt.Value == input {
			return true
		}
	}
	return false
}

func init() {
	rootCmd.AddCommand(runCmd)
}
