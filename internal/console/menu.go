package console

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	closedMessage = "Thank you. Application closed normally."
	optionPrompt  = "Enter your option: "
)

type menuItem struct {
	label  string
	action func(p *prompter) error // nil marks the exit item
}

type menu struct {
	title string
	items []menuItem
}

// run loops until the exit item is chosen or input ends. Only I/O failures
// are returned; user mistakes are printed and the menu is shown again.
func (m menu) run(p *prompter) error {
	for {
		p.println(m.title)
		for i, item := range m.items {
			p.println(fmt.Sprintf("%d. %s", i+1, item.label))
		}
		choice, err := p.ask(optionPrompt)
		if errors.Is(err, io.EOF) {
			p.println()
			return nil
		}
		if err != nil {
			if err = p.report(err); err != nil {
				return err
			}
			p.println()
			continue
		}
		p.println()

		item, ok := m.lookup(choice)
		if !ok {
			p.println(fmt.Sprintf("Invalid option. Please select between 1 and %d.", len(m.items)))
			p.println()
			continue
		}
		if item.action == nil {
			p.println(closedMessage)
			return nil
		}

		err = p.report(item.action(p))
		if errors.Is(err, io.EOF) {
			p.println()
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (m menu) lookup(choice string) (menuItem, bool) {
	choice = strings.TrimSpace(choice)
	for i, item := range m.items {
		if choice == fmt.Sprint(i+1) {
			return item, true
		}
	}
	return menuItem{}, false
}
