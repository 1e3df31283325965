// Package cli provides the interactive secretvault command-line client.
//
// It wires configuration, the storage backend, the vault store and the
// secret service, then runs a REPL on stdin until the user exits.
//
// Commands:
//   - store      save a secret under a username, protected by a passkey
//   - retrieve   show the secret for a username after passkey check
//   - help       list commands
//   - exit|quit  leave the program
//
// A session counts failed retrievals. After the configured number of
// failures the user is warned and the counter starts over.
package cli
