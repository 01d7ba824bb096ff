package format

import (
	"strings"

	"github.com/google/uuid"
)

// NamespaceFormatIdentity is the UUID namespace for descriptor identities,
// derived from "mdconv/format-identity/v1" within the URL namespace.
var NamespaceFormatIdentity = uuid.NewSHA1(uuid.NameSpaceURL, []byte("mdconv/format-identity/v1"))

// ID returns a deterministic UUID v5 for the descriptor's name and version.
//
// Case is folded, so compatible descriptors (IsCompatible with checkVersion)
// share an ID:
//   - "DDI" v2.5 → uuid_v5(namespace, "ddi/2.5")
//   - "ddi" v2.5 → same ID
//
// The ID is a convenience for machine-readable listings and takes no part in
// equality.
func (d *Descriptor) ID() uuid.UUID {
	return uuid.NewSHA1(NamespaceFormatIdentity, []byte(identityKey(d.name, d.version)))
}

func identityKey(name, version string) string {
	return strings.ToLower(name) + "/" + strings.ToLower(version)
}
