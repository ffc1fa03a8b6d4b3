package player

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"deepduck/game"
	"deepduck/gamemaster"
	"deepduck/meta"
	"deepduck/searcher"
	"deepduck/utils"

	"github.com/rs/zerolog/log"
)

const helpMessage = `
DEEP DUCK

These are the available commands:

    exit                 Stop this
    help                 Show this help message
    board                Show the current board
    restart              Start again from the initial position
    evaluate             Score the position for White
    suggest              Show the engine's action without playing it
    play                 Let the engine play for the side to move
    move <e2e4@e3>       Play an action, the duck goes after the @
    undo                 Take back the last action
    fen [fen notation]   Print the position or load another one
    depth [number]       Show or update the search depth
    clear                Clear the terminal
`

var commands = []string{"exit", "help", "board", "restart", "evaluate", "suggest", "play", "move", "undo", "fen", "depth", "clear"}

// Console is the interactive shell. It reads one command per line.
type Console struct {
	in      *bufio.Scanner
	out     io.Writer
	master  *gamemaster.GameMaster
	session *gamemaster.Session
	depth   int
}

func NewConsole(in io.Reader, out io.Writer, master *gamemaster.GameMaster, depth int) (*Console, error) {
	session, err := master.NewGame("")
	if err != nil {
		return nil, err
	}
	return &Console{
		in:      bufio.NewScanner(in),
		out:     out,
		master:  master,
		session: session,
		depth:   max(depth, 1),
	}, nil
}

// Run executes commands until exit or the end of the input.
func (c *Console) Run() error {
	c.printf("%s\n", strings.TrimLeft(helpMessage, "\n"))
	for {
		c.printf("> ")
		if !c.in.Scan() {
			c.printf("\n")
			return c.in.Err()
		}
		if quit := c.Execute(c.in.Text()); quit {
			return nil
		}
	}
}

// Execute runs one command line and reports whether the shell should stop.
func (c *Console) Execute(line string) bool {
	key, arg := utils.SplitCommand(line)
	if key == "" {
		return false
	}
	if utils.FindIndex(commands, key) == -1 {
		c.printf("Invalid command. Type help for more info.\n")
		return false
	}

	switch key {
	case "exit":
		return true
	case "help":
		c.printf("%s", helpMessage)
	case "board":
		c.printBoard()
	case "restart":
		c.load(game.StartFEN)
	case "evaluate":
		c.evaluate()
	case "suggest":
		c.suggest()
	case "play":
		c.play()
	case "move":
		c.move(arg)
	case "undo":
		c.undo()
	case "fen":
		if arg == "" {
			c.printf("%s\n", c.session.Snapshot().Board.FEN())
		} else {
			c.load(arg)
		}
	case "depth":
		c.changeDepth(arg)
	case "clear":
		c.printf("\x1b[2J\x1b[1;1H")
	}
	return false
}

func (c *Console) load(fen string) {
	session, err := c.master.NewGame(fen)
	if err != nil {
		c.printf("%v\n", err)
		return
	}
	if err := c.master.Remove(c.session.ID); err != nil {
		log.Warn().Err(err).Msg("failed to drop the previous game")
	}
	c.session = session
	c.printBoard()
}

func (c *Console) evaluate() {
	snapshot := c.session.Snapshot()
	evaluation := c.session.Evaluate(c.depth)
	score := evaluation.Score
	if snapshot.Board.Active() == game.Black {
		score = -score
	}

	switch {
	case score >= searcher.MateThreshold:
		c.printf("White has a mate\n")
	case score <= -searcher.MateThreshold:
		c.printf("Black has a mate\n")
	default:
		c.printf("Centipawns: %d\n", score/100)
	}
	c.printf("%s\n", bar(score))
}

func (c *Console) suggest() {
	evaluation := c.session.Evaluate(c.depth)
	if evaluation.Movement == nil {
		c.printf("There are no movements for your position.\n")
		return
	}
	c.printf("Move: %s\n", describe(*evaluation.Movement))
}

func (c *Console) play() {
	evaluation, err := c.session.EngineMove(c.depth)
	if errors.Is(err, gamemaster.ErrGameOver) || errors.Is(err, gamemaster.ErrNoAction) {
		c.printf("There are no movements for this position.\n")
		return
	}
	if err != nil {
		c.printf("%v\n", err)
		return
	}
	c.printBoard()
	c.printf("Computer moved: %s\n", describe(*evaluation.Movement))
}

func (c *Console) move(arg string) {
	m, err := game.ParseMovement(arg)
	if err != nil {
		c.printf("%v\n", err)
		return
	}
	if _, err := c.session.Play(m); err != nil {
		c.printf("%v\n", err)
		return
	}
	c.printBoard()
}

func (c *Console) undo() {
	m, err := c.session.Undo()
	if err != nil {
		c.printf("%v\n", err)
		return
	}
	c.printBoard()
	c.printf("Took back %s\n", m)
}

func (c *Console) changeDepth(arg string) {
	if arg == "" {
		c.printf("Depth: %d\n", c.depth)
		return
	}
	depth, err := strconv.Atoi(arg)
	if err != nil || depth < 1 {
		c.printf("Invalid command. Type help for more info.\n")
		return
	}
	if depth > meta.MAX_DEPTH {
		c.printf("Be careful, this may take an eternity to run.\n")
	}
	c.depth = depth
}

func (c *Console) printBoard() {
	snapshot := c.session.Snapshot()
	c.printf("%s\n", snapshot.Board)
	if snapshot.Winner != nil {
		c.printf("%s wins\n", snapshot.Winner)
	}
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func describe(m game.Movement) string {
	return fmt.Sprintf("%s to %s and duck to %s", m.Origin, m.Target, m.DuckTarget)
}

// bar draws the score from White's side as 20 cells.
func bar(score int) string {
	var filled int
	switch {
	case score <= -searcher.MateThreshold:
		filled = 0
	case score <= -1000:
		filled = 1
	case score <= -300:
		filled = 5
	case score <= -100:
		filled = 8
	case score < 100:
		filled = 10
	case score < 300:
		filled = 12
	case score < 1000:
		filled = 16
	case score < searcher.MateThreshold:
		filled = 19
	default:
		filled = 20
	}
	return strings.Repeat("●", filled) + strings.Repeat("○", 20-filled)
}
