// Package cli implements the interactive command-line client for the
// matchly auth API: it prompts for credentials and calls the server.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/matchly/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// AuthAPI is the part of the server the CLI talks to.
type AuthAPI interface {
	Register(ctx context.Context, username string, password []byte) error
	Login(ctx context.Context, username string, password []byte) (string, error)
}

type App struct {
	reader *bufio.Reader
	out    io.Writer
	api    AuthAPI
}

func NewApp(api AuthAPI) *App {
	return &App{
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
		api:    api,
	}
}

// Register prompts the user for a username and password and attempts to
// create a new account.
//
// On success it prints "Registered!" and returns nil. The password byte
// slice is wiped before returning.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.api.Register(ctx, username, password); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Registered!")
	return nil
}

// Login prompts the user for credentials, authenticates against the server,
// and prints the issued token. The password is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	token, err := a.api.Login(ctx, username, password)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, token)
	return nil
}
