package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	out    io.Writer
	errOut io.Writer
}

// NewOutput creates a new Output formatter
func NewOutput(format string, out, errOut io.Writer) *Output {
	return &Output{format: format, out: out, errOut: errOut}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error. Word rejections keep their title and root.
func (o *Output) PrintError(err error) {
	var apiErr *APIError
	isAPI := errors.As(err, &apiErr)

	if o.format == "json" {
		body := map[string]string{"message": err.Error()}
		if isAPI {
			body = map[string]string{"code": apiErr.Code, "message": apiErr.Message}
			if apiErr.Title != "" {
				body["title"] = apiErr.Title
				body["root"] = apiErr.Root
			}
		}
		data, _ := json.Marshal(map[string]any{"error": body})
		fmt.Fprintln(o.errOut, string(data))
		return
	}

	if isAPI && apiErr.Title != "" {
		fmt.Fprintf(o.errOut, "%s\n%s\n", apiErr.Title, apiErr.Message)
		return
	}
	fmt.Fprintf(o.errOut, "Error: %s\n", err)
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Fprintln(o.out, string(data))
	} else {
		fmt.Fprintln(o.out, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.out)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Session:
		o.printSession(v)
	case Round:
		o.printRound(v)
	case SubmitResult:
		o.printSubmitResult(v)
	case Hint:
		o.printHint(v)
	case HighScore:
		fmt.Fprintf(o.out, "High score: %d\n", v.HighScore)
	case Rules:
		fmt.Fprintln(o.out, v.Text)
	case HealthResult:
		fmt.Fprintf(o.out, "Status: %s\n", v.Status)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Session response type (matches API)
type Session struct {
	SessionID string `json:"session_id"`
	Round     Round  `json:"round"`
}

// Round response type
type Round struct {
	Root      string   `json:"root"`
	Accepted  []string `json:"accepted"`
	Rejected  []string `json:"rejected"`
	Score     int      `json:"score"`
	HighScore int      `json:"high_score"`
}

// SubmitResult response type
type SubmitResult struct {
	Outcome      string   `json:"outcome"`
	Word         string   `json:"word"`
	Root         string   `json:"root"`
	Score        int      `json:"score"`
	Accepted     []string `json:"accepted"`
	Rejected     []string `json:"rejected"`
	HighScore    int      `json:"high_score"`
	NewHighScore bool     `json:"new_high_score"`
}

// Hint response type
type Hint struct {
	Root      string `json:"root"`
	Text      string `json:"text"`
	Remaining int    `json:"remaining"`
}

// HighScore response type
type HighScore struct {
	HighScore int `json:"high_score"`
}

// Rules holds the game instructions
type Rules struct {
	Text string `json:"rules"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printSession(s Session) {
	fmt.Fprintf(o.out, "Session: %s\n", s.SessionID)
	o.printRound(s.Round)
}

func (o *Output) printRound(r Round) {
	fmt.Fprintf(o.out, "Root word: %s\n", strings.ToUpper(r.Root))
	fmt.Fprintf(o.out, "Score: %d\n", r.Score)
	fmt.Fprintf(o.out, "High score: %d\n", r.HighScore)
	o.printWordTable(r.Accepted)
	o.printWords("Missed", r.Rejected)
}

// printWordTable lists accepted words, most recent first, with their points
func (o *Output) printWordTable(words []string) {
	if len(words) == 0 {
		return
	}

	table := tablewriter.NewWriter(o.out)
	table.SetHeader([]string{"Word", "Points"})
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetTablePadding("\t")

	for _, w := range words {
		table.Append([]string{w, strconv.Itoa(len([]rune(w)))})
	}
	table.Render()
}

func (o *Output) printWords(label string, words []string) {
	if len(words) == 0 {
		return
	}
	fmt.Fprintf(o.out, "%s (%d): %s\n", label, len(words), strings.Join(words, ", "))
}

func (o *Output) printSubmitResult(r SubmitResult) {
	if r.Outcome == "noop" {
		return
	}
	fmt.Fprintf(o.out, "Accepted: %s (+%d)\n", r.Word, len([]rune(r.Word)))
	fmt.Fprintf(o.out, "Score: %d\n", r.Score)
	if r.NewHighScore {
		fmt.Fprintf(o.out, "New high score: %d!\n", r.HighScore)
	} else {
		fmt.Fprintf(o.out, "High score: %d\n", r.HighScore)
	}
}

func (o *Output) printHint(h Hint) {
	fmt.Fprintln(o.out, h.Text)
	if h.Remaining > 0 {
		fmt.Fprintf(o.out, "There are at least %d more words to find.\n", h.Remaining)
	}
}
