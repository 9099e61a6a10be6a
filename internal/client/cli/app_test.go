package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/dmitrijs2005/matchly/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	registerErr error

	loginToken string
	loginErr   error

	gotUsername string
	gotPassword string
}

func (f *fakeAPI) Register(ctx context.Context, username string, password []byte) error {
	f.gotUsername = username
	f.gotPassword = string(password)
	return f.registerErr
}

func (f *fakeAPI) Login(ctx context.Context, username string, password []byte) (string, error) {
	f.gotUsername = username
	f.gotPassword = string(password)
	return f.loginToken, f.loginErr
}

func stubInput(t *testing.T, username string, password []byte) {
	t.Helper()

	origText, origPassword := getSimpleText, getPassword
	t.Cleanup(func() {
		getSimpleText, getPassword = origText, origPassword
	})

	getSimpleText = func(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
		return username, nil
	}
	getPassword = func(w io.Writer) ([]byte, error) {
		// Copy so the App's wipe does not destroy the test fixture.
		pw := make([]byte, len(password))
		copy(pw, password)
		return pw, nil
	}
}

func newTestApp(api AuthAPI) (*App, *bytes.Buffer) {
	var out bytes.Buffer
	return &App{
		reader: bufio.NewReader(strings.NewReader("")),
		out:    &out,
		api:    api,
	}, &out
}

func TestApp_Register(t *testing.T) {
	stubInput(t, "alice", []byte("Secret1!"))

	api := &fakeAPI{}
	app, out := newTestApp(api)

	require.NoError(t, app.Register(context.Background()))
	assert.Equal(t, "alice", api.gotUsername)
	assert.Equal(t, "Secret1!", api.gotPassword)
	assert.Contains(t, out.String(), "Registered!")
}

func TestApp_Register_ServerError(t *testing.T) {
	stubInput(t, "alice", []byte("x"))

	api := &fakeAPI{registerErr: errors.New("Username already exists")}
	app, _ := newTestApp(api)

	err := app.Register(context.Background())
	require.Error(t, err)
	assert.Equal(t, "Username already exists", err.Error())
}

func TestApp_Login(t *testing.T) {
	stubInput(t, "alice", []byte("Secret1!"))

	api := &fakeAPI{loginToken: "tok-123"}
	app, out := newTestApp(api)

	require.NoError(t, app.Login(context.Background()))
	assert.Contains(t, out.String(), "tok-123")
}

func TestApp_Login_Unauthorized(t *testing.T) {
	stubInput(t, "alice", []byte("wrong"))

	api := &fakeAPI{loginErr: common.ErrorUnauthorized}
	app, _ := newTestApp(api)

	assert.ErrorIs(t, app.Login(context.Background()), common.ErrorUnauthorized)
}
