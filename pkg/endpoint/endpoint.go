package endpoint

import (
	"errors"
	"net"
	"net/url"
	"strconv"
)

func Scheme(scheme string, insecure bool) string {
	if insecure {
		return scheme
	}
	return scheme + "s"
}

// ParseAddr resolves the externally reachable host:port for a listener.
// The configured address wins unless it binds a wildcard host, in which
// case the first global unicast interface address is advertised.
func ParseAddr(ln net.Listener, address string) (string, error) {
	host, port, err := net.SplitHostPort(address)
	if err != nil && ln == nil {
		return "", err
	}
	if ln != nil {
		tcpAddr, ok := ln.Addr().(*net.TCPAddr)
		if !ok {
			return "", errors.New("parse addr error")
		}
		port = strconv.Itoa(tcpAddr.Port)
	}
	if len(host) > 0 && host != "0.0.0.0" && host != "[::]" && host != "::" {
		return net.JoinHostPort(host, port), nil
	}

	is, err := net.Interfaces()
	if err != nil {
		return "", err
	}
	index := int(^uint(0) >> 1)
	ips := make([]net.IP, 0)
	for _, i := range is {
		if (i.Flags & net.FlagUp) == 0 {
			continue
		}
		if i.Index >= index && len(ips) != 0 {
			continue
		}
		addr, e := i.Addrs()
		if e != nil {
			continue
		}
		for _, a := range addr {
			var ip net.IP
			switch at := a.(type) {
			case *net.IPAddr:
				ip = at.IP
			case *net.IPNet:
				ip = at.IP
			default:
				continue
			}
			if !ip.IsGlobalUnicast() || ip.IsInterfaceLocalMulticast() {
				continue
			}
			index = i.Index
			ips = append(ips, ip)
			if ip.To4() != nil {
				break
			}
		}
	}
	if len(ips) == 0 {
		return net.JoinHostPort(host, port), nil
	}
	return net.JoinHostPort(ips[len(ips)-1].String(), port), nil
}

// URI combines scheme and resolved address into the advertised endpoint.
func URI(scheme, addr string) string {
	u := &url.URL{
		Scheme: scheme,
		Host:   addr,
	}
	return u.String()
}
