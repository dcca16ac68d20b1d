package state

import "github.com/tOgg1/streamwatch/internal/input"

type bind = input.KeyBind[Event]

func quitBinds() []bind {
	return []bind{
		input.Bind[Event](input.Special(input.CodeEsc), Exited{}),
		input.Bind[Event](input.Char('q'), Exited{}),
		input.Bind[Event](input.Char('Q'), Exited{}),
	}
}

func moveBinds() []bind {
	return []bind{
		input.Bind[Event](input.Special(input.CodeUp), CycleHighlight{Up}),
		input.Bind[Event](input.Char('w'), CycleHighlight{Up}),
		input.Bind[Event](input.Char('W'), CycleHighlight{Up}),
		input.Bind[Event](input.Char('k'), CycleHighlight{Up}),
		input.Bind[Event](input.Special(input.CodeDown), CycleHighlight{Down}),
		input.Bind[Event](input.Char('s'), CycleHighlight{Down}),
		input.Bind[Event](input.Char('S'), CycleHighlight{Down}),
		input.Bind[Event](input.Char('j'), CycleHighlight{Down}),
		input.Bind[Event](input.Special(input.CodeHome), HomeEndHighlight{First}),
		input.Bind[Event](input.Special(input.CodeEnd), HomeEndHighlight{Last}),
	}
}

func selectBinds() []bind {
	return []bind{
		input.Bind[Event](input.Special(input.CodeEnter), Selected{}),
		input.Bind[Event](input.Char(' '), Selected{}),
	}
}

func panelAndTabBinds() []bind {
	return []bind{
		input.Bind[Event](input.Special(input.CodeLeft), CyclePanel{Left}),
		input.Bind[Event](input.Char('a'), CyclePanel{Left}),
		input.Bind[Event](input.Char('A'), CyclePanel{Left}),
		input.Bind[Event](input.Special(input.CodeRight), CyclePanel{Right}),
		input.Bind[Event](input.Char('d'), CyclePanel{Right}),
		input.Bind[Event](input.Char('D'), CyclePanel{Right}),
		input.Bind[Event](input.Special(input.CodeTab), CycleTab{Right}),
		input.Bind[Event](input.Special(input.CodeBackTab), CycleTab{Left}),
	}
}

func concat(groups ...[]bind) []bind {
	var out []bind
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

func homeInputs() *input.Handler[Event] {
	return input.NewHandler(concat(quitBinds(), moveBinds(), selectBinds(), panelAndTabBinds()))
}

func listsInputs() *input.Handler[Event] {
	return input.NewHandler(concat(quitBinds(), moveBinds(), selectBinds(), panelAndTabBinds()))
}

// typingInputs leaves every printable key unbound so it can be typed.
func typingInputs() *input.Handler[Event] {
	return input.NewHandler([]bind{
		input.Bind[Event](input.Special(input.CodeEsc), StopTyping{}),
		input.Bind[Event](input.Special(input.CodeEnter), Submit{}),
		input.Bind[Event](input.Special(input.CodeBackspace), DeleteChar{}),
		input.Bind[Event](input.Ctrl('v'), Paste{}),
	})
}

func choiceInputs() *input.Handler[Event] {
	return input.NewHandler(concat(quitBinds(), moveBinds(), selectBinds()))
}

func userInputInputs() *input.Handler[Event] {
	return input.NewHandler(concat(quitBinds(), selectBinds()))
}

func timedInfoInputs() *input.Handler[Event] {
	return input.NewHandler(quitBinds())
}

func noInputs() *input.Handler[Event] {
	return input.NewHandler[Event](nil)
}

func startupInputs() *input.Handler[Event] {
	return input.NewHandler(quitBinds())
}
