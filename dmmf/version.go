package dmmf

import (
	"github.com/hashicorp/go-version"

	"github.com/satishbabariya/prisma-class-validator-go/internal/errors"
)

// MinPrismaVersion is the oldest toolchain whose DMMF shape this package decodes.
const MinPrismaVersion = "4.0.0"

// CheckVersion rejects documents produced by a toolchain older than
// MinPrismaVersion. Documents without a version are accepted.
func CheckVersion(doc *Document) error {
	if doc.PrismaVersion == "" {
		return nil
	}
	got, err := version.NewVersion(doc.PrismaVersion)
	if err != nil {
		return errors.Wrapf(err, "invalid prismaVersion %q", doc.PrismaVersion)
	}
	minimum := version.Must(version.NewVersion(MinPrismaVersion))
	if got.LessThan(minimum) {
		return errors.WithHintf(
			errors.Newf("document produced by prisma %s, need >= %s", got, minimum),
			"regenerate the document with prisma %s or newer", MinPrismaVersion,
		)
	}
	return nil
}
