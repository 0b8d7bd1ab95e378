package oracle

import (
	"context"
	"net"
	"strings"
	"time"

	"golang.org/x/crypto/ssh"

	"credprobe/config"
	cperrors "credprobe/internal/errors"
	"credprobe/internal/search"
	"credprobe/util"
)

// SSHPassword tests candidates as passwords against an SSH endpoint.
// A completed handshake ⇒ Success, an authentication refusal ⇒
// Rejected, anything else (dial failure, banner problems) ⇒ Error.
//
// Host keys are deliberately not verified: the target is the thing
// being probed, not a peer being trusted.
type SSHPassword struct {
	Host     string
	Port     int
	Username string
	Timeout  time.Duration
	Logger   *util.Logger
}

// NewSSHPassword builds the SSH oracle from the run configuration.
func NewSSHPassword(cfg *config.Config, logger *util.Logger) *SSHPassword {
	return &SSHPassword{
		Host:     cfg.SSHHost,
		Port:     cfg.SSHPort,
		Username: cfg.Username,
		Timeout:  cfg.Timeout,
		Logger:   logger,
	}
}

// Test implements search.Oracle.
func (o *SSHPassword) Test(ctx context.Context, c search.Candidate) search.Outcome {
	addr := util.FormatAddr(o.Host, o.Port)

	clientCfg := &ssh.ClientConfig{
		User:            o.Username,
		Auth:            []ssh.AuthMethod{ssh.Password(string(c))},
		HostKeyCallback: ssh.InsecureIgnoreHostKey(), //nolint:gosec
		Timeout:         o.Timeout,
	}

	d := net.Dialer{Timeout: o.Timeout}
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return search.Fault(cperrors.Wrap("dial", addr, err))
	}

	sshConn, chans, reqs, err := ssh.NewClientConn(conn, addr, clientCfg)
	if err != nil {
		conn.Close()
		if isAuthFailure(err) {
			return search.Rejected()
		}
		return search.Fault(cperrors.Wrap("handshake", addr, err))
	}

	// Authenticated — the candidate is the password.  Tear the session
	// down immediately; the engine only needs the verdict.
	ssh.NewClient(sshConn, chans, reqs).Close()
	return search.Success()
}

// isAuthFailure distinguishes "wrong password" from transport trouble.
// x/crypto/ssh exposes auth refusal only through the error text.
func isAuthFailure(err error) bool {
	return err != nil && strings.Contains(err.Error(), "unable to authenticate")
}
