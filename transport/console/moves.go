package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"unicode"

	"github.com/rocketscienceinc/tictactoe-match/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-match/internal/entity"
)

// Cell is a requested (row, col) position.
type Cell struct {
	Row int
	Col int
}

// ParseMove reads "row col" or "row,col".
func ParseMove(s string) (Cell, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})

	if len(fields) != 2 {
		return Cell{}, fmt.Errorf("%w: %q", apperror.ErrMalformedMove, s)
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return Cell{}, fmt.Errorf("%w: %q", apperror.ErrMalformedMove, s)
	}

	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return Cell{}, fmt.Errorf("%w: %q", apperror.ErrMalformedMove, s)
	}

	return Cell{Row: row, Col: col}, nil
}

// MoveReader reads one move per line. Blank lines and lines starting
// with # are skipped. Lines are scanned on a separate goroutine so a
// cancelled context unblocks NextMove while it waits on input.
type MoveReader struct {
	in    io.Reader
	once  sync.Once
	lines chan scannedLine
}

type scannedLine struct {
	text string
	err  error
}

func NewMoveReader(in io.Reader) *MoveReader {
	return &MoveReader{in: in, lines: make(chan scannedLine)}
}

func (that *MoveReader) NextMove(ctx context.Context, _ *entity.Player) (int, int, error) {
	that.once.Do(that.scan)

	for {
		if err := ctx.Err(); err != nil {
			return 0, 0, err
		}

		var next scannedLine
		select {
		case <-ctx.Done():
			return 0, 0, ctx.Err()
		case line, ok := <-that.lines:
			if !ok {
				return 0, 0, io.EOF
			}
			next = line
		}

		if next.err != nil {
			return 0, 0, fmt.Errorf("failed to read move: %w", next.err)
		}

		line := strings.TrimSpace(next.text)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		cell, err := ParseMove(line)
		if err != nil {
			return 0, 0, err
		}

		return cell.Row, cell.Col, nil
	}
}

// scan feeds lines until the input ends. The goroutine outlives a cancelled
// NextMove while it is blocked on a read; for stdin that lasts until exit.
func (that *MoveReader) scan() {
	go func() {
		defer close(that.lines)

		scanner := bufio.NewScanner(that.in)
		for scanner.Scan() {
			that.lines <- scannedLine{text: scanner.Text()}
		}

		if err := scanner.Err(); err != nil {
			that.lines <- scannedLine{err: err}
		}
	}()
}

// ScriptedMoves replays a fixed list of moves.
type ScriptedMoves struct {
	cells []Cell
	next  int
}

func NewScriptedMoves(cells ...Cell) *ScriptedMoves {
	return &ScriptedMoves{cells: cells}
}

// ParseScript reads whitespace separated "row,col" pairs, e.g. "0,0 1,1 0,1".
func ParseScript(script string) (*ScriptedMoves, error) {
	fields := strings.Fields(script)
	cells := make([]Cell, 0, len(fields))

	for _, field := range fields {
		cell, err := ParseMove(field)
		if err != nil {
			return nil, err
		}

		cells = append(cells, cell)
	}

	return NewScriptedMoves(cells...), nil
}

func (that *ScriptedMoves) NextMove(ctx context.Context, _ *entity.Player) (int, int, error) {
	if err := ctx.Err(); err != nil {
		return 0, 0, err
	}

	if that.next >= len(that.cells) {
		return 0, 0, io.EOF
	}

	cell := that.cells[that.next]
	that.next++

	return cell.Row, cell.Col, nil
}

func (that *ScriptedMoves) Remaining() int {
	return len(that.cells) - that.next
}
