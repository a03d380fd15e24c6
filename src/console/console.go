package console

import (
	"context"
	"fmt"
	"strconv"

	"github.com/eiannone/keyboard"
	"github.com/rs/zerolog"

	"fleetvator/src/types"
)

type actionKind int

const (
	actionNone actionKind = iota
	actionSubmit
	actionQuit
)

type action struct {
	kind  actionKind
	floor int
	dir   types.Direction
}

// keyParser turns key presses into requests: digits build a floor number, u or d sends
// it in that direction. Backspace clears the number.
type keyParser struct {
	digits []rune
}

func (p *keyParser) feed(char rune, key keyboard.Key) action {
	switch key {
	case keyboard.KeyCtrlC, keyboard.KeyEsc:
		return action{kind: actionQuit}
	case keyboard.KeyBackspace, keyboard.KeyBackspace2:
		p.digits = p.digits[:0]
		return action{}
	}

	switch {
	case char >= '0' && char <= '9':
		p.digits = append(p.digits, char)
		return action{}
	case char == 'q' || char == 'Q':
		return action{kind: actionQuit}
	}

	dir, err := types.ParseDirection(string(char))
	if err != nil || len(p.digits) == 0 {
		return action{}
	}
	floor, err := strconv.Atoi(string(p.digits))
	p.digits = p.digits[:0]
	if err != nil {
		return action{}
	}
	return action{kind: actionSubmit, floor: floor, dir: dir}
}

// Run reads the keyboard until the user quits or ctx is done. It returns nil on quit.
func Run(ctx context.Context, submit func(floor int, dir types.Direction) error, log zerolog.Logger) error {
	log = log.With().Str("component", "console").Logger()
	keys, err := keyboard.GetKeys(10)
	if err != nil {
		return fmt.Errorf("open keyboard: %w", err)
	}
	defer keyboard.Close()

	log.Info().Msg("Type a floor then u or d to call an elevator, q to quit")
	var parser keyParser
	for {
		select {
		case <-ctx.Done():
			return nil
		case event := <-keys:
			if event.Err != nil {
				return fmt.Errorf("read keyboard: %w", event.Err)
			}
			act := parser.feed(event.Rune, event.Key)
			switch act.kind {
			case actionQuit:
				log.Info().Msg("Quit requested")
				return nil
			case actionSubmit:
				if err := submit(act.floor, act.dir); err != nil {
					log.Warn().Err(err).Msg("Request refused")
				}
			}
		}
	}
}
