package server

import "errors"

var errNoServersAreCreated = errors.New("no servers are created: empty HTTP address")
