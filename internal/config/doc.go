// Package config loads and validates slide decks and resolves the
// environment overrides of the slidecast binary.
//
// A deck is a YAML file describing the slides of a presentation: their
// order, display time, kind and copy. When no deck is given the embedded
// default deck is used.
//
// # Deck Lookup
//
// ResolveDeckPath picks the first of:
//   - the --deck flag
//   - SLIDECAST_DECK
//   - deck.yaml in the configuration directory, if it exists
//   - the embedded default (empty path)
//
// The configuration directory follows platform conventions:
//   - Linux: $XDG_CONFIG_HOME/slidecast or $HOME/.config/slidecast
//   - macOS: $HOME/.config/slidecast
//   - Windows: %LOCALAPPDATA%\slidecast
//
// # Usage Example
//
//	path, err := config.ResolveDeckPath(flagDeck, env.Deck)
//	if err != nil {
//	    return err
//	}
//	deck, err := config.LoadDeck(path)
//	if err != nil {
//	    return err // *config.DeckError for invalid decks
//	}
//
// Decks are read once at startup and never mutated afterwards.
package config
