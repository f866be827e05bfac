package composer

// PromptKind distinguishes the confirmation dialogs the wizard can raise.
type PromptKind string

const (
	PromptCancel          PromptKind = "cancel"
	PromptDisableStep     PromptKind = "disableStep"
	PromptDisableFeedback PromptKind = "disableFeedback"
	PromptRemove          PromptKind = "remove"
)

// Prompter asks the user to confirm a destructive or discarding action.
// Ask must eventually invoke then exactly once with the user's choice; a
// declined prompt aborts only the pending action, nothing else. There is no
// timeout: an unanswered prompt leaves the pending action suspended.
type Prompter interface {
	Ask(kind PromptKind, then func(confirmed bool))
}

// PrompterFunc adapts a function to the Prompter interface.
type PrompterFunc func(kind PromptKind, then func(confirmed bool))

func (f PrompterFunc) Ask(kind PromptKind, then func(confirmed bool)) { f(kind, then) }
