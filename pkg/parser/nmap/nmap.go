// Package nmap parses Nmap XML output (nmaprun schema) into the canonical
// finding model. One finding is emitted per open port; a scan with no open
// ports still yields an informational summary finding.
//
// The parse boundary never returns an error: malformed input degrades to a
// single descriptive parsing-error finding.
package nmap

import (
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/finding"
	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/iohelper"
)

// Source is the parser name stamped on every finding.
const Source = "nmap"

// nmaprun XML schema, reduced to the fields the finding model needs.

type nmapRun struct {
	XMLName xml.Name   `xml:"nmaprun"`
	Hosts   []nmapHost `xml:"host"`
}

type nmapHost struct {
	Addresses []nmapAddress  `xml:"address"`
	Hostnames []nmapHostname `xml:"hostnames>hostname"`
	Ports     []nmapPort     `xml:"ports>port"`
}

type nmapAddress struct {
	Addr     string `xml:"addr,attr"`
	AddrType string `xml:"addrtype,attr"`
}

type nmapHostname struct {
	Name string `xml:"name,attr"`
}

type nmapPort struct {
	PortID   string      `xml:"portid,attr"`
	Protocol string      `xml:"protocol,attr"`
	State    nmapState   `xml:"state"`
	Service  nmapService `xml:"service"`
}

type nmapState struct {
	State string `xml:"state,attr"`
}

type nmapService struct {
	Name    string `xml:"name,attr"`
	Product string `xml:"product,attr"`
	Version string `xml:"version,attr"`
}

// Parse reads an Nmap XML file and returns findings. The returned list is
// always non-empty: open ports become findings, a clean scan becomes a
// "Network Scan Completed" finding, and any structural failure becomes a
// "Nmap Parsing Error" finding.
func Parse(path string) []finding.Finding {
	data, err := iohelper.ReadFile(path)
	if err != nil {
		return []finding.Finding{finding.NewParseError(Source, "Nmap", err)}
	}
	return ParseBytes(data)
}

// ParseBytes parses raw Nmap XML content. Same contract as Parse.
func ParseBytes(data []byte) []finding.Finding {
	var run nmapRun
	if err := xml.Unmarshal(data, &run); err != nil {
		return []finding.Finding{finding.NewParseError(Source, "Nmap", err)}
	}

	var findings []finding.Finding
	for _, host := range run.Hosts {
		hostIP := primaryIPv4(host.Addresses)
		hostname := hostIP
		if len(host.Hostnames) > 0 && host.Hostnames[0].Name != "" {
			hostname = host.Hostnames[0].Name
		}

		for _, port := range host.Ports {
			if port.State.State != "open" {
				continue
			}
			findings = append(findings, portFinding(hostIP, hostname, port))
		}
	}

	if len(findings) == 0 {
		findings = append(findings, scanCompletedFinding())
	}

	finding.ApplyDefaultsAll(findings)
	return findings
}

// primaryIPv4 resolves the host's primary IPv4 address.
func primaryIPv4(addresses []nmapAddress) string {
	for _, addr := range addresses {
		if addr.AddrType == "ipv4" && addr.Addr != "" {
			return addr.Addr
		}
	}
	return ""
}

func portFinding(hostIP, hostname string, port nmapPort) finding.Finding {
	serviceName := port.Service.Name
	if serviceName == "" {
		serviceName = "unknown"
	}
	protocol := port.Protocol
	if protocol == "" {
		protocol = "tcp"
	}

	f := finding.Finding{
		Title:       fmt.Sprintf("Open Port: %s/%s (%s)", port.PortID, protocol, serviceName),
		Description: fmt.Sprintf("Port %s/%s is open on %s (%s)", port.PortID, protocol, hostname, hostIP),
		Host:        hostIP,
		Hostname:    hostname,
		Port:        port.PortID,
		Protocol:    protocol,
		Service:     serviceName,
		Impact:      fmt.Sprintf("Service %s is accessible from the network", serviceName),
		Evidence:    fmt.Sprintf("Nmap scan detected open port %s/%s", port.PortID, protocol),
		TechStack:   "Network Service",
		Category:    "network_scan",
		Source:      Source,
	}

	versionInfo := strings.TrimSpace(port.Service.Product + " " + port.Service.Version)
	if versionInfo != "" {
		f.Description += " running " + versionInfo
		f.VersionInfo = versionInfo
	}
	return f
}

func scanCompletedFinding() finding.Finding {
	return finding.Finding{
		Title:       "Network Scan Completed",
		Description: "Nmap scan completed but no open ports were detected",
		Impact:      "No immediate network-level exposures identified",
		Evidence:    "Nmap XML scan results",
		TechStack:   "Network",
		Category:    "network_scan",
		Severity:    finding.Info,
		Source:      Source,
	}
}

// ParseMock returns deterministic sample findings for use when no real
// scan file is supplied.
func ParseMock() []finding.Finding {
	findings := []finding.Finding{
		{
			Title:       "Open SSH Port Detected",
			Description: "Port 22 (SSH) is open on target system",
			Host:        "192.168.1.10",
			Hostname:    "target-server",
			Port:        "22",
			Protocol:    "tcp",
			Service:     "ssh",
			VersionInfo: "OpenSSH 8.0",
			Impact:      "SSH service may allow unauthorized access if not properly secured",
			Evidence:    "Nmap scan detected open SSH port with version OpenSSH 8.0",
			TechStack:   "Network Service",
			Category:    "network_scan",
			Source:      Source,
		},
		{
			Title:       "Web Server Detected",
			Description: "Port 80 (HTTP) is open on target system",
			Host:        "192.168.1.10",
			Hostname:    "target-server",
			Port:        "80",
			Protocol:    "tcp",
			Service:     "http",
			VersionInfo: "Apache 2.4.41",
			Impact:      "Web server is publicly accessible",
			Evidence:    "Nmap scan detected Apache web server on port 80",
			TechStack:   "Web Server",
			Category:    "network_scan",
			Source:      Source,
		},
	}
	finding.ApplyDefaultsAll(findings)
	return findings
}
