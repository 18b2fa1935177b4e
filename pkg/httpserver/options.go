package httpserver

import (
	"crypto/tls"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"
	"time"

	"software.sslmate.com/src/go-pkcs12"
)

// Option -.
type Option func(*Server)

// Port -.
func Port(host, port string) Option {
	return func(s *Server) {
		s.server.Addr = net.JoinHostPort(host, port)
	}
}

// ReadTimeout -.
func ReadTimeout(timeout time.Duration) Option {
	return func(s *Server) {
		s.server.ReadTimeout = timeout
	}
}

// WriteTimeout -.
func WriteTimeout(timeout time.Duration) Option {
	return func(s *Server) {
		s.server.WriteTimeout = timeout
	}
}

// ShutdownTimeout -.
func ShutdownTimeout(timeout time.Duration) Option {
	return func(s *Server) {
		s.shutdownTimeout = timeout
	}
}

// TLS serves with the given certificate.
func TLS(cert tls.Certificate) Option {
	return func(s *Server) {
		s.server.TLSConfig = tlsConfig(cert)
	}
}

// LoadCertificate reads a PEM certificate/key pair, or a PKCS#12 bundle
// when certFile ends in .p12 or .pfx. For bundles keyFile is the password.
func LoadCertificate(certFile, keyFile string) (tls.Certificate, error) {
	switch strings.ToLower(filepath.Ext(certFile)) {
	case ".p12", ".pfx":
		return loadPKCS12(certFile, keyFile)
	default:
		cert, err := tls.LoadX509KeyPair(certFile, keyFile)
		if err != nil {
			return tls.Certificate{}, fmt.Errorf("httpserver - load key pair: %w", err)
		}

		return cert, nil
	}
}

func loadPKCS12(path, password string) (tls.Certificate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("httpserver - read bundle: %w", err)
	}

	key, leaf, chain, err := pkcs12.DecodeChain(data, password)
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("httpserver - decode bundle %s: %w", path, err)
	}

	cert := tls.Certificate{
		Certificate: [][]byte{leaf.Raw},
		PrivateKey:  key,
		Leaf:        leaf,
	}

	for _, ca := range chain {
		cert.Certificate = append(cert.Certificate, ca.Raw)
	}

	return cert, nil
}
