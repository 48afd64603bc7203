package enrich

import (
	"strings"

	"github.com/gh0st-bit/cybersec-ai-autoreport/pkg/finding"
)

// fallbackRemediation returns rule-based remediation guidance keyed on the
// finding's title, tech stack, and category. Each plan follows the fixed
// four-section structure (Immediate / Long-term / Monitoring / Prevention)
// so reports stay uniform whether or not AI enrichment ran.
func fallbackRemediation(f *finding.Finding) string {
	title := strings.ToLower(f.Title)
	techStack := strings.ToLower(f.TechStack)
	category := strings.ToLower(f.Category)

	switch {
	case strings.Contains(title, "sql injection") || strings.Contains(title, "sqli"):
		return remediationSQLi
	case strings.Contains(title, "xss") || strings.Contains(title, "cross-site scripting"):
		return remediationXSS
	case strings.Contains(title, "ssh") || strings.Contains(title, "remote"):
		return remediationSSH
	case strings.Contains(title, "information disclosure") ||
		strings.Contains(title, "version") || strings.Contains(title, "banner"):
		return remediationInfoDisclosure
	case strings.Contains(techStack, "web") || strings.Contains(techStack, "application"):
		return remediationWeb
	case strings.Contains(techStack, "network") || strings.Contains(category, "network"):
		return remediationNetwork
	case strings.Contains(title, "ssl") || strings.Contains(title, "tls") ||
		strings.Contains(title, "certificate"):
		return remediationTLS
	default:
		return remediationGeneric
	}
}

const remediationSQLi = `1. Immediate Actions:
   - Implement parameterized queries (prepared statements)
   - Apply input validation and sanitization
   - Review and update all database queries

2. Long-term Solutions:
   - Use ORM frameworks with built-in SQL injection protection
   - Implement least privilege database access
   - Regular security code reviews

3. Monitoring:
   - Enable database query logging
   - Implement Web Application Firewall (WAF)
   - Monitor for suspicious database activities

4. Prevention:
   - Security awareness training for developers
   - Automated security testing in CI/CD pipeline
   - Regular penetration testing`

const remediationXSS = `1. Immediate Actions:
   - Implement output encoding for all user inputs
   - Apply input validation and sanitization
   - Use Content Security Policy (CSP) headers

2. Long-term Solutions:
   - Implement proper templating engines with auto-escaping
   - Use secure coding frameworks
   - Regular security code reviews

3. Monitoring:
   - Implement Web Application Firewall (WAF)
   - Monitor for XSS attack patterns
   - Regular vulnerability scanning

4. Prevention:
   - Security awareness training for developers
   - Automated security testing tools
   - Secure development lifecycle (SDLC)`

const remediationSSH = `1. Immediate Actions:
   - Change default SSH port (from 22 to non-standard port)
   - Disable root login via SSH
   - Implement fail2ban for brute force protection

2. Long-term Solutions:
   - Configure key-based authentication only
   - Restrict SSH access by IP address
   - Implement multi-factor authentication

3. Monitoring:
   - Monitor SSH login attempts and failures
   - Set up alerts for suspicious activities
   - Regular audit of SSH access logs

4. Prevention:
   - Regular security updates and patches
   - Network segmentation
   - VPN access for remote connections`

const remediationInfoDisclosure = `1. Immediate Actions:
   - Remove or obscure version information from headers
   - Configure servers to suppress detailed error messages
   - Review and remove unnecessary information exposure

2. Long-term Solutions:
   - Implement proper error handling
   - Configure security headers appropriately
   - Regular security configuration reviews

3. Monitoring:
   - Monitor for information leakage in logs
   - Regular security scanning
   - Automated configuration compliance checks

4. Prevention:
   - Security hardening guidelines
   - Regular security assessments
   - Security awareness training`

const remediationWeb = `1. Immediate Actions:
   - Review and validate all user inputs
   - Implement proper authentication and authorization
   - Apply security patches and updates

2. Long-term Solutions:
   - Implement secure coding practices
   - Use security frameworks and libraries
   - Regular security code reviews

3. Monitoring:
   - Implement Web Application Firewall (WAF)
   - Regular vulnerability scanning
   - Security event monitoring

4. Prevention:
   - Security development lifecycle (SDLC)
   - Automated security testing
   - Regular penetration testing`

const remediationNetwork = `1. Immediate Actions:
   - Review and restrict network access
   - Apply security patches to network services
   - Implement proper firewall rules

2. Long-term Solutions:
   - Network segmentation and isolation
   - Implement intrusion detection systems
   - Regular network security assessments

3. Monitoring:
   - Network traffic monitoring
   - Intrusion detection and prevention
   - Regular network scanning

4. Prevention:
   - Network security policies
   - Regular security updates
   - Network access controls`

const remediationTLS = `1. Immediate Actions:
   - Update SSL/TLS certificates if expired
   - Configure strong cipher suites
   - Disable weak protocols (SSLv2, SSLv3, TLS 1.0, TLS 1.1)

2. Long-term Solutions:
   - Implement proper certificate management
   - Use TLS 1.2 or higher with strong ciphers
   - Implement certificate pinning where appropriate

3. Monitoring:
   - Monitor certificate expiration dates
   - Regular SSL/TLS configuration testing
   - Automated certificate renewal

4. Prevention:
   - SSL/TLS configuration standards
   - Regular security assessments
   - Certificate lifecycle management`

const remediationGeneric = `1. Immediate Actions:
   - Assess the scope and impact of the vulnerability
   - Apply available security patches and updates
   - Implement temporary mitigations if needed

2. Long-term Solutions:
   - Follow security best practices for the affected technology
   - Implement proper security controls and configurations
   - Regular security reviews and assessments

3. Monitoring:
   - Implement monitoring for the affected systems
   - Set up alerts for suspicious activities
   - Regular vulnerability scanning

4. Prevention:
   - Establish regular security update procedures
   - Implement security awareness training
   - Regular security assessments and testing`
