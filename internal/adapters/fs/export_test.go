package fs

import iofs "io/fs"

func SetStat(c *CachedHasher, stat func(string) (iofs.FileInfo, error)) {
	c.stat = stat
}
