// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package httperrors turns HTTP/network failures into short reasons for launcher
// result items and into troubleshooting blocks for the interactive CLI.
package httperrors

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"net"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"syscall"

	"github.com/pterm/pterm"

	perrors "gtranslate/plugin/internal/errors"
	"gtranslate/plugin/internal/logging"
)

var reServerStatus = regexp.MustCompile(`status 5\d\d`)

// Reason is a short classification of a failure.
type Reason string

const (
	ReasonTimeout     Reason = "Request timed out"
	ReasonDNS         Reason = "Cannot resolve host"
	ReasonRefused     Reason = "Connection refused"
	ReasonTLS         Reason = "Secure connection failed"
	ReasonServer      Reason = "Google Translate returned a server error"
	ReasonNoResult    Reason = "No translation found in the response"
	ReasonClipboard   Reason = "Clipboard is not available"
	ReasonNetwork     Reason = "Network error"
	ReasonUnavailable Reason = "Unexpected error"
)

// Classify returns the Reason for err. Typed network errors decide first;
// keyword matching only sees the error text with request URLs removed, so the
// query text cannot influence the result.
func Classify(err error) Reason {
	switch {
	case err == nil:
		return ""
	case perrors.Is(err, perrors.ExtractionFailed):
		return ReasonNoResult
	case perrors.Is(err, perrors.ClipboardFailed):
		return ReasonClipboard
	case isDNSError(err):
		return ReasonDNS
	case isTimeoutError(err):
		return ReasonTimeout
	case isConnectionRefusedError(err):
		return ReasonRefused
	case isSSLError(err):
		return ReasonTLS
	case isServerError(scrubbedText(err)):
		return ReasonServer
	case perrors.Is(err, perrors.FetchFailed), perrors.Is(err, perrors.ConnectivityFailed):
		return ReasonNetwork
	default:
		return ReasonUnavailable
	}
}

// Describe returns a one-line reason suitable for a result item subtitle.
// DNS failures name host, or the looked-up name when host is unknown.
func Describe(err error, host string) string {
	r := Classify(err)
	if r == ReasonDNS {
		return "Cannot resolve " + dnsHost(err, host)
	}
	return string(r)
}

// scrubbedText returns err's message without the URLs of wrapped *url.Error
// values and with any remaining query text masked.
func scrubbedText(err error) string {
	msg := err.Error()
	for e := err; e != nil; e = errors.Unwrap(e) {
		if ue, ok := e.(*url.Error); ok && ue.URL != "" {
			msg = strings.ReplaceAll(msg, strconv.Quote(ue.URL), "")
			msg = strings.ReplaceAll(msg, ue.URL, "")
		}
	}
	return strings.ToLower(logging.Mask(msg))
}

// dnsHost returns the host a failed lookup was for.
func dnsHost(err error, fallback string) string {
	if fallback != "" && fallback != "server" {
		return fallback
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) && dnsErr.Name != "" {
		return dnsErr.Name
	}
	return "the server"
}

// FormatNetworkError converts technical HTTP/network errors into user-friendly messages.
// It detects common error types (timeout, DNS, connection refused, SSL, server errors)
// and displays helpful troubleshooting information.
// host is the server that was contacted.
func FormatNetworkError(err error, context, host string) error {
	if err == nil {
		return nil
	}

	// Display user-friendly error message with pterm
	displayErrorMessage(err, context, host)

	// Return wrapped error for logging/debugging
	return fmt.Errorf("network error: %w", err)
}

// displayErrorMessage shows a formatted error message to the user based on error type.
func displayErrorMessage(err error, context, host string) {
	errStr := logging.Mask(err.Error())

	switch Classify(err) {
	case ReasonTimeout:
		showTimeoutError(context)
	case ReasonDNS:
		showDNSError(context, dnsHost(err, host))
	case ReasonRefused:
		showConnectionRefusedError(context)
	case ReasonTLS:
		showSSLError(context)
	case ReasonServer:
		showServerError(context)
	case ReasonNoResult:
		showNoResultError(context)
	default:
		showGenericError(context, dnsHost(err, host), errStr)
	}
}

// isTimeoutError checks if the error is a timeout error.
func isTimeoutError(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	// Check for net.Error with Timeout()
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	errStr := scrubbedText(err)
	return strings.Contains(errStr, "timeout") ||
		strings.Contains(errStr, "deadline exceeded")
}

// isDNSError checks if the error is a DNS resolution error.
func isDNSError(err error) bool {
	if err == nil {
		return false
	}

	var dnsErr *net.DNSError
	return errors.As(err, &dnsErr)
}

// isConnectionRefusedError checks if the error is a connection refused error.
func isConnectionRefusedError(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, syscall.ECONNREFUSED) {
		return true
	}
	return strings.Contains(scrubbedText(err), "connection refused")
}

// isSSLError checks if the error is an SSL/TLS error.
func isSSLError(err error) bool {
	if err == nil {
		return false
	}

	var (
		verifyErr    *tls.CertificateVerificationError
		recordErr    tls.RecordHeaderError
		authorityErr x509.UnknownAuthorityError
		hostnameErr  x509.HostnameError
		invalidErr   x509.CertificateInvalidError
	)
	if errors.As(err, &verifyErr) || errors.As(err, &recordErr) ||
		errors.As(err, &authorityErr) || errors.As(err, &hostnameErr) || errors.As(err, &invalidErr) {
		return true
	}

	errStr := scrubbedText(err)
	return strings.Contains(errStr, "tls") ||
		strings.Contains(errStr, "ssl") ||
		strings.Contains(errStr, "certificate") ||
		strings.Contains(errStr, "handshake")
}

// isServerError checks if the error indicates a server-side problem (5xx errors).
func isServerError(errStr string) bool {
	lower := strings.ToLower(errStr)
	return reServerStatus.MatchString(lower) ||
		strings.Contains(lower, "internal server error") ||
		strings.Contains(lower, "bad gateway") ||
		strings.Contains(lower, "service unavailable") ||
		strings.Contains(lower, "gateway timeout")
}

// showTimeoutError displays a user-friendly timeout error message.
func showTimeoutError(context string) {
	pterm.Printf("⏱️  Connection timeout while %s\n", context)
	pterm.Println()
	pterm.Println("The server took too long to respond. This could mean:")
	pterm.Println("  • Slow internet connection")
	pterm.Println("  • Server is under heavy load")
	pterm.Println("  • Network firewall is blocking the connection")
	pterm.Println()
	pterm.Println("Please try again in a few moments.")
	pterm.Println()
}

// showDNSError displays a user-friendly DNS error message.
func showDNSError(context, host string) {
	pterm.Printf("🌐 Cannot resolve server address while %s\n", context)
	pterm.Println()
	pterm.Printf("Unable to look up %s. Please check:\n", host)
	pterm.Println("  • Your internet connection is working")
	pterm.Println("  • DNS settings are correct")
	pterm.Println("  • No DNS-level blocking (corporate firewall, parental controls)")
	pterm.Println()
}

// showConnectionRefusedError displays a user-friendly connection refused error message.
func showConnectionRefusedError(context string) {
	pterm.Printf("🚫 Connection refused while %s\n", context)
	pterm.Println()
	pterm.Println("The server is not accepting connections. This could mean:")
	pterm.Println("  • The service is temporarily down")
	pterm.Println("  • Firewall is blocking the connection")
	pterm.Println("  • Wrong server address or port")
	pterm.Println()
	pterm.Println("Please try again later.")
	pterm.Println()
}

// showSSLError displays a user-friendly SSL/TLS error message.
func showSSLError(context string) {
	pterm.Printf("🔒 Secure connection failed while %s\n", context)
	pterm.Println()
	pterm.Println("Cannot establish a secure HTTPS connection. This could mean:")
	pterm.Println("  • SSL/TLS certificate issue")
	pterm.Println("  • Network proxy interfering with HTTPS")
	pterm.Println("  • System clock is incorrect")
	pterm.Println()
	pterm.Println("Try:")
	pterm.Println("  • Check your system date and time")
	pterm.Println("  • Verify network proxy settings")
	pterm.Println()
}

// showServerError displays a user-friendly server error message.
func showServerError(context string) {
	pterm.Printf("⚠️  Server error while %s\n", context)
	pterm.Println()
	pterm.Println("Google Translate answered with an error status.")
	pterm.Println("  • The service may be rate limiting this address")
	pterm.Println("  • Please try again in a few minutes")
	pterm.Println()
}

// showNoResultError displays a message for pages without a translation.
func showNoResultError(context string) {
	pterm.Printf("🔎 No translation in the response while %s\n", context)
	pterm.Println()
	pterm.Println("The page did not contain a result container. This could mean:")
	pterm.Println("  • The language code is not supported")
	pterm.Println("  • Google changed the markup of the mobile page")
	pterm.Println()
	pterm.Println("Try the other extractor: GTRANSLATE_EXTRACTOR=html")
	pterm.Println()
}

// showGenericError displays a generic error message for unrecognized errors.
func showGenericError(context, host, errDetails string) {
	pterm.Printf("❌ Cannot reach Google Translate while %s\n", context)
	pterm.Println()
	pterm.Println("Please check:")
	pterm.Println("  • Your internet connection")
	pterm.Printf("  • Whether %s is accessible from your network\n", host)
	pterm.Println("  • Firewall settings that might block HTTPS requests")
	pterm.Println()

	// Show abbreviated error details for debugging
	if errDetails != "" {
		shortErr := errDetails
		if len(shortErr) > 100 {
			shortErr = shortErr[:100] + "..."
		}
		pterm.Debug.Printf("Technical details: %s\n", shortErr)
		pterm.Println()
	}
}

// ExtractHostFromURL extracts the hostname from a URL for error messages.
func ExtractHostFromURL(urlStr string) string {
	u, err := url.Parse(urlStr)
	if err != nil || u.Host == "" {
		return "server"
	}
	return u.Host
}
