package command

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/starford/laguz/internal/apperr"
	"github.com/starford/laguz/internal/models"
	"github.com/starford/laguz/internal/notebook"
)

// EndMarker terminates interactive note entry. Text before the marker on
// its line is kept; the marker and anything after it is discarded.
const EndMarker = "#endnote#"

// Dispatcher executes one command against the note store. Input and
// output streams are injected so interactive capture is testable.
type Dispatcher struct {
	db     *notebook.DB
	in     *bufio.Reader
	out    io.Writer
	logger *slog.Logger
}

// NewDispatcher creates a Dispatcher reading note text from in and
// writing prompts and reports to out.
func NewDispatcher(db *notebook.DB, in io.Reader, out io.Writer, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{
		db:     db,
		in:     bufio.NewReader(in),
		out:    out,
		logger: logger,
	}
}

// Execute runs the store operation matching cmd. Store failures abort
// the command and propagate unmodified; there is no retry and no
// partial application.
func (d *Dispatcher) Execute(_ context.Context, cmd Command) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	switch cmd.Kind {
	case Add:
		fmt.Fprintf(d.out, "Enter the note you want to add into `%s`\n", cmd.Name)
		fmt.Fprintf(d.out, "(at the end of the note, enter `%s` to finish writing):\n", EndMarker)
		note, err := d.readNote()
		if err != nil {
			return err
		}
		fmt.Fprintf(d.out, "Note to add into `%s`:\n%s\n", cmd.Name, note)
		_, err = d.db.Create(cmd.Name, note)
		return err

	case Delete:
		return d.db.Delete(cmd.Name)

	case DeleteAll:
		n, err := d.db.DeleteAll()
		if err != nil {
			return err
		}
		fmt.Fprintf(d.out, "Deleted %d notes\n", n)
		return nil

	case Clear:
		return d.db.Clear(cmd.Name)

	case UpdateNote:
		fmt.Fprintf(d.out, "Enter the note you want to add instead of the old note in `%s`\n", cmd.Name)
		fmt.Fprintf(d.out, "(at the end of the note, enter `%s` to finish writing):\n", EndMarker)
		note, err := d.readNote()
		if err != nil {
			return err
		}
		fmt.Fprintf(d.out, "Note to add into `%s` instead of the old note:\n%s\n", cmd.Name, note)
		_, err = d.db.Update(cmd.Name, note)
		return err

	case Rename:
		_, err := d.db.Rename(cmd.Name, cmd.NewName)
		return err

	case Display:
		note, err := d.db.Get(cmd.Name)
		if err != nil {
			return err
		}
		fmt.Fprintln(d.out, "Requested note:")
		d.printNote(note)
		return nil

	case DisplayAll:
		notes, err := d.db.GetAll()
		if err != nil {
			return err
		}
		fmt.Fprintln(d.out, "All notes in notebook:")
		for i := range notes {
			d.printNote(&notes[i])
		}
		return nil

	default:
		return fmt.Errorf("unknown command kind %d", cmd.Kind)
	}
}

// readNote collects lines until a line containing EndMarker. The line's
// prefix before the marker is retained; everything from the marker on is
// discarded. Any read failure, EOF before the marker included, is an
// apperr.ErrInput and is fatal to the invocation.
func (d *Dispatcher) readNote() (string, error) {
	var b strings.Builder
	for {
		line, err := d.in.ReadString('\n')
		if idx := strings.Index(line, EndMarker); idx >= 0 {
			b.WriteString(line[:idx])
			return b.String(), nil
		}
		if err != nil {
			d.logger.Debug("note input aborted", slog.String("error", err.Error()))
			return "", fmt.Errorf("%w: %v", apperr.ErrInput, err)
		}
		b.WriteString(line)
	}
}

func (d *Dispatcher) printNote(note *models.Note) {
	fmt.Fprintf(d.out, "ID: %d\nName: %s\nData:\n%s\n", note.ID, note.Name, note.Note)
}
