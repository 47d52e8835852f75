package cluster

import "errors"

// ErrMalformedLine reports a cluster file line that is not "word clusterid".
var ErrMalformedLine = errors.New("cluster: malformed line")
