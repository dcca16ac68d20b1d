package state

import (
	"errors"
	"strconv"
	"strings"

	"github.com/tOgg1/streamwatch/internal/input"
	"github.com/tOgg1/streamwatch/internal/styles"
	"github.com/tOgg1/streamwatch/internal/twitch"
	"github.com/tOgg1/streamwatch/internal/ui"
)

// AccountField is one prompt of the account setup chain, in prompt order.
type AccountField int

const (
	FieldUsername AccountField = iota
	FieldUserID
	FieldClientID
	FieldClientSecret
	FieldRedirectPort

	fieldCount
)

// Title is the prompt title shown to the user.
func (f AccountField) Title() string {
	switch f {
	case FieldUsername:
		return "Username"
	case FieldUserID:
		return "User ID"
	case FieldClientID:
		return "Client ID"
	case FieldClientSecret:
		return "Client Secret"
	case FieldRedirectPort:
		return "Redirect URL Port"
	default:
		return "Done"
	}
}

func (f AccountField) String() string {
	return strings.ToLower(strings.ReplaceAll(f.Title(), " ", "_"))
}

var errNoAccountBuilder = errors.New("no account builder configured")

const accountErrorTitle = "Account Error"

// AccountMissing walks the user through the account prompts one field at a
// time, then builds the account in the background.
type AccountMissing struct {
	env      *Env
	duration uint64
	prompt   AccountField
	fields   twitch.Fields
	prompted bool
	building bool
	handler  *input.Handler[Event]
}

// NewAccountMissing starts the chain at the first prompt.
func NewAccountMissing(env *Env) *AccountMissing {
	return newAccountMissing(env, FieldUsername, twitch.Fields{})
}

func newAccountMissing(env *Env, prompt AccountField, fields twitch.Fields) *AccountMissing {
	duration := env.StartupTicks
	if duration == 0 {
		duration = DefaultStartupTicks
	}
	return &AccountMissing{
		env:      env,
		duration: duration,
		prompt:   prompt,
		fields:   fields,
		handler:  startupInputs(),
	}
}

func (a *AccountMissing) sealed()    {}
func (a *AccountMissing) Kind() Kind { return KindAccountMissing }
func (a *AccountMissing) Receive()   {}

// Prompt returns the field currently being asked for.
func (a *AccountMissing) Prompt() AccountField { return a.prompt }

// Fields returns the answers collected so far.
func (a *AccountMissing) Fields() twitch.Fields { return a.fields }

// Building reports whether the account is being created.
func (a *AccountMissing) Building() bool { return a.building }

func (a *AccountMissing) Tick(_ *twitch.Account, timer uint64, tx Sender) {
	if timer <= a.duration {
		return
	}
	if a.prompt < fieldCount {
		if a.prompted {
			return
		}
		a.prompted = true
		tx.Send(fieldPrompt(a.prompt))
		return
	}
	if a.building {
		return
	}
	a.building = true
	go buildAccount(a.env, a.fields, tx)
}

// buildAccount runs off the frame loop.
func buildAccount(env *Env, fields twitch.Fields, tx Sender) {
	var (
		account *twitch.Account
		err     error
	)
	if env.BuildAccount == nil {
		err = errNoAccountBuilder
	} else {
		account, err = env.BuildAccount(env.ctx(), fields)
	}
	if err != nil {
		env.logger().Error().Err(err).Str("username", fields.Username).Msg("account setup failed")
		tx.Send(TimedInfoPopupStarted{
			Title:    accountErrorTitle,
			Message:  err.Error(),
			Duration: env.ErrorTicks,
			Callback: func(tx Sender, _ Output) { tx.Send(Exited{}) },
		})
		return
	}
	env.logger().Info().Str("username", account.Username).Msg("account configured")
	tx.Send(AccountConfigured{Account: account})
}

func fieldPrompt(field AccountField) InputPopupStarted {
	title := field.Title()
	return InputPopupStarted{
		Title:   title,
		Message: "Your " + title + " here",
		Callback: func(tx Sender, out Output) {
			if value, ok := out.(InputOutput); ok {
				tx.Send(AccountFieldSet{Field: field, Value: string(value)})
			}
		},
	}
}

func (a *AccountMissing) Handle(key input.Key) (Event, bool) {
	return a.handler.Handle(key)
}

func (a *AccountMissing) Process(ev Event, tx Sender) {
	if _, ok := ev.(Exited); ok {
		tx.Send(ev)
	}
}

func (a *AccountMissing) Transition(ev Event, _ *twitch.Account, tx Sender) *Transition {
	switch e := ev.(type) {
	case Exited:
		return To(NewExit())
	case InputPopupStarted:
		return Push(NewInputPopup(a.env, e.Title, e.Message, e.Callback))
	case TimedInfoPopupStarted:
		return Push(NewTimedInfoPopup(a.env, e.Title, e.Message, e.Duration, e.Callback))
	case AccountFieldSet:
		fields, err := setField(a.fields, e.Field, e.Value)
		if err != nil {
			a.env.logger().Warn().Err(err).Str("field", e.Field.String()).Msg("invalid account field, asking again")
			return To(newAccountMissing(a.env, e.Field, a.fields))
		}
		return To(newAccountMissing(a.env, e.Field+1, fields))
	case AccountConfigured:
		favourites, err := a.env.loadFavourites()
		if err != nil {
			a.env.logger().Error().Err(err).Str("path", a.env.FavouritesPath).Msg("failed to load favourites")
			return To(NewExit())
		}
		return To(NewHome(a.env, favourites, tx))
	default:
		return nil
	}
}

func setField(fields twitch.Fields, field AccountField, value string) (twitch.Fields, error) {
	value = strings.TrimSpace(value)
	switch field {
	case FieldUsername:
		fields.Username = value
	case FieldUserID:
		fields.UserID = value
	case FieldClientID:
		fields.ClientID = value
	case FieldClientSecret:
		fields.ClientSecret = value
	case FieldRedirectPort:
		port, err := strconv.ParseUint(value, 10, 16)
		if err != nil {
			return fields, err
		}
		fields.Port = uint16(port)
	}
	return fields, nil
}

func (a *AccountMissing) Freeze() Snapshot {
	return accountMissingSnapshot{
		duration: a.duration,
		prompt:   a.prompt,
		fields:   a.fields,
		prompted: a.prompted,
		building: a.building,
	}
}

func (a *AccountMissing) Legend() []input.LegendEntry {
	return a.handler.Legend()
}

func (a *AccountMissing) Render(theme styles.Theme, width, height int, _ uint64) string {
	return ui.AccountMissing(theme, width, height, a.prompt.Title(), a.building, a.Legend())
}

type accountMissingSnapshot struct {
	duration uint64
	prompt   AccountField
	fields   twitch.Fields
	prompted bool
	building bool
}

func (accountMissingSnapshot) Kind() Kind { return KindAccountMissing }

func (s accountMissingSnapshot) Thaw(env *Env, _ Sender) AppState {
	a := newAccountMissing(env, s.prompt, s.fields)
	a.duration = s.duration
	a.prompted = s.prompted
	a.building = s.building
	return a
}
