package oid

// Well-known extended key usage purposes (RFC 5280 section 4.2.1.12 and others).
var (
	AnyExtendedKeyUsage = MustParse("2.5.29.37.0")
	ServerAuth          = MustParse("1.3.6.1.5.5.7.3.1")
	ClientAuth          = MustParse("1.3.6.1.5.5.7.3.2")
	CodeSigning         = MustParse("1.3.6.1.5.5.7.3.3")
	EmailProtection     = MustParse("1.3.6.1.5.5.7.3.4")
	IPSECEndSystem      = MustParse("1.3.6.1.5.5.7.3.5")
	IPSECTunnel         = MustParse("1.3.6.1.5.5.7.3.6")
	IPSECUser           = MustParse("1.3.6.1.5.5.7.3.7")
	TimeStamping        = MustParse("1.3.6.1.5.5.7.3.8")
	OCSPSigning         = MustParse("1.3.6.1.5.5.7.3.9")
	MicrosoftSGC        = MustParse("1.3.6.1.4.1.311.10.3.3")
	NetscapeSGC         = MustParse("2.16.840.1.113730.4.1")
	SmartcardLogon      = MustParse("1.3.6.1.4.1.311.20.2.2")
	DocumentSigning     = MustParse("1.3.6.1.4.1.311.10.3.12")

	MicrosoftCommercialCodeSigning = MustParse("1.3.6.1.4.1.311.2.1.22")
	MicrosoftKernelCodeSigning     = MustParse("1.3.6.1.4.1.311.61.1.1")
)

// Standard certificate extension identifiers.
var (
	ExtSubjectKeyID          = MustParse("2.5.29.14")
	ExtKeyUsage              = MustParse("2.5.29.15")
	ExtSubjectAltName        = MustParse("2.5.29.17")
	ExtBasicConstraints      = MustParse("2.5.29.19")
	ExtCRLDistributionPoints = MustParse("2.5.29.31")
	ExtCertificatePolicies   = MustParse("2.5.29.32")
	ExtAuthorityKeyID        = MustParse("2.5.29.35")
	ExtExtendedKeyUsage      = MustParse("2.5.29.37")
	ExtAuthorityInfoAccess   = MustParse("1.3.6.1.5.5.7.1.1")
)

var names = map[OID]string{
	AnyExtendedKeyUsage: "Any Extended Key Usage",
	ServerAuth:          "TLS Web Server Authentication",
	ClientAuth:          "TLS Web Client Authentication",
	CodeSigning:         "Code Signing",
	EmailProtection:     "E-mail Protection",
	IPSECEndSystem:      "IPSec End System",
	IPSECTunnel:         "IPSec Tunnel",
	IPSECUser:           "IPSec User",
	TimeStamping:        "Time Stamping",
	OCSPSigning:         "OCSP Signing",
	MicrosoftSGC:        "Microsoft Server Gated Crypto",
	NetscapeSGC:         "Netscape Server Gated Crypto",
	SmartcardLogon:      "Smartcard Logon",
	DocumentSigning:     "Document Signing",

	MicrosoftCommercialCodeSigning: "Microsoft Commercial Code Signing",
	MicrosoftKernelCodeSigning:     "Microsoft Kernel Mode Code Signing",

	ExtSubjectKeyID:          "Subject Key Identifier",
	ExtKeyUsage:              "Key Usage",
	ExtSubjectAltName:        "Subject Alternative Name",
	ExtBasicConstraints:      "Basic Constraints",
	ExtCRLDistributionPoints: "CRL Distribution Points",
	ExtCertificatePolicies:   "Certificate Policies",
	ExtAuthorityKeyID:        "Authority Key Identifier",
	ExtExtendedKeyUsage:      "Extended Key Usage",
	ExtAuthorityInfoAccess:   "Authority Information Access",
}

// Name returns a human-readable name for well-known OIDs, or "" if unknown.
func Name(o OID) string {
	return names[o]
}
