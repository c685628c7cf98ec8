package domain

import (
	"net"
	"strconv"
)

// EmailCredential holds connection details for a polled mailbox
type EmailCredential struct {
	ID       int64
	Protocol string
	Server   string
	Port     int
	Username string
	Password string
}

// Addr returns the server:port dial address
func (c EmailCredential) Addr() string {
	return net.JoinHostPort(c.Server, strconv.Itoa(c.Port))
}
