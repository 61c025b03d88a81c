package gamemaster

import (
	"errors"
	"fmt"

	"checkers/game"
	"checkers/meta"
	"checkers/searcher"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var ErrGameOver = errors.New("game is over - no moves allowed")

const updateBuffer = 16

type UpdateGetter func() (game.Move, *game.Board)

type Engine interface {
	Init() (*game.Board, UpdateGetter)
	Play(game.Move) error
}

type update struct {
	move  game.Move
	board *game.Board
}

// localEngine referees a game between an external player, such as a person
// moving pieces on a physical board, and the minimax opponent.
type localEngine struct {
	ID             string
	size           int
	difficulty     int
	staleThreshold int
	board          *game.Board
	minimax        *searcher.Minimax
	updateCh       chan update
	gameOver       bool
}

func NewLocalEngine(size, difficulty int, options ...searcher.Option) *localEngine {
	return &localEngine{
		ID:             uuid.NewString(),
		size:           size,
		difficulty:     difficulty,
		staleThreshold: meta.STALE_THRESHOLD,
		minimax:        searcher.NewMinimax(options...),
	}
}

// Init sets up the opening position. The returned board is a copy; the
// getter returns nil values while no update is pending and after the game is over.
func (e *localEngine) Init() (*game.Board, UpdateGetter) {
	board, err := game.NewBoard(game.NoSide, e.size, e.difficulty)
	if err != nil {
		log.Warn().Err(err).Msgf("session %s: falling back to a %dx%d board at difficulty %d", e.ID, meta.BOARD_SIZE, meta.BOARD_SIZE, meta.DIFFICULTY)
		board, _ = game.NewBoard(game.NoSide, meta.BOARD_SIZE, meta.DIFFICULTY)
	}
	board.SetBoard()

	e.board = board
	e.gameOver = false
	e.updateCh = make(chan update, updateBuffer)
	return e.board.Clone(), func() (game.Move, *game.Board) {
		select {
		case u, ok := <-e.updateCh:
			if !ok { // Game over
				return nil, nil
			}
			return u.move, u.board
		default:
			// No updates yet
			return nil, nil
		}
	}
}

// Play validates and applies a move for the side to move, then hands the
// turn over.
func (e *localEngine) Play(move game.Move) error {
	if e.gameOver {
		return ErrGameOver
	}
	if e.board == nil {
		return fmt.Errorf("%w: session %s was not initialised", game.ErrMoveRejected, e.ID)
	}

	if err := e.board.MoveTile(move, true); err != nil {
		return err
	}
	e.board.ChangeTurn()
	log.Debug().Msgf("session %s: played %s\n%s", e.ID, move, e.board.Render(e.staleThreshold))

	e.publish(update{move: move, board: e.board.Clone()})
	if e.board.IsOver(e.staleThreshold) {
		e.gameOver = true
		close(e.updateCh)
		log.Info().Msgf("session %s: game over with winner %d", e.ID, e.board.Winner())
	}
	return nil
}

func (e *localEngine) publish(u update) {
	select {
	case e.updateCh <- u:
	default:
		log.Warn().Msgf("session %s: update buffer full, dropping update for %s", e.ID, u.move)
	}
}

// Respond lets the minimax opponent play for the side to move.
func (e *localEngine) Respond() (game.Move, error) {
	if e.gameOver {
		return nil, ErrGameOver
	}
	move, score := e.minimax.BestMove(e.board)
	log.Info().Msgf("session %s: opponent plays %s with score %d", e.ID, move, score)
	if err := e.Play(move); err != nil {
		return nil, err
	}
	return move, nil
}

// Observe reconciles a board observed after a physical move with the rules,
// and plays the move that explains it.
func (e *localEngine) Observe(observed *game.Board) (game.Move, error) {
	if e.gameOver {
		return nil, ErrGameOver
	}
	move, err := e.board.FindMovement(observed)
	if err != nil {
		return nil, err
	}
	if err := e.Play(move); err != nil {
		return nil, err
	}
	return move, nil
}

// Options lists the numbered moves available to the piece at origin.
func (e *localEngine) Options(origin game.Position) (string, []game.Move) {
	return e.board.PossibleMovements(origin)
}

// Board returns a copy of the current board.
func (e *localEngine) Board() *game.Board {
	return e.board.Clone()
}

func (e *localEngine) Winner() int {
	if !e.gameOver {
		return game.NoSide
	}
	return e.board.Winner()
}
