package tui

type keysLoadedMsg struct {
	keys []string
	err  error
}

type valueLoadedMsg struct {
	key   string
	value *string
	err   error
}

type itemDeletedMsg struct {
	key string
	err error
}

type clearStatusMsg struct{}
