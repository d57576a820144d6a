/*
 * files.go, part of gomdft.
 *
 *
 * Copyright 2021 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 * goChem is currently developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */

package mdft

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

//*zstd.Decoder's Close doesn't return an error, so it doesn't
//implement io.ReadCloser.
type zstdql struct {
	*zstd.Decoder
}

func (z zstdql) Close() error {
	z.Decoder.Close()
	return nil
}

//fileCloser closes both the decompressor and the underlying file.
type fileCloser struct {
	io.Reader
	dec io.Closer
	f   *os.File
}

func (c fileCloser) Close() error {
	var err error
	if c.dec != nil {
		err = c.dec.Close()
	}
	if err2 := c.f.Close(); err == nil {
		err = err2
	}
	return err
}

//OpenFile opens name for reading. Files ending in .gz are gunzipped, and
//files ending in .zst or .zstd are zstd-decompressed on the fly.
func OpenFile(name string) (io.ReadCloser, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	buf := bufio.NewReader(f)
	switch compression(name) {
	case "gz":
		r, err := gzip.NewReader(buf)
		if err != nil {
			f.Close()
			return nil, NewError(ErrFormat, name, "OpenFile", "can't read gzip stream: %s", err)
		}
		return fileCloser{r, r, f}, nil
	case "zst":
		r, err := zstd.NewReader(buf)
		if err != nil {
			f.Close()
			return nil, NewError(ErrFormat, name, "OpenFile", "can't read zstd stream: %s", err)
		}
		return fileCloser{r, zstdql{r}, f}, nil
	}
	return fileCloser{buf, nil, f}, nil
}

//WriteFile writes data to name, compressing it if the name ends in .gz,
//.zst or .zstd. The data goes to a temporary file in the same directory that
//is renamed to name only after everything was written, so name is never left
//truncated.
func WriteFile(name string, data []byte) (err error) {
	var out bytes.Buffer
	switch compression(name) {
	case "gz":
		w := gzip.NewWriter(&out)
		if _, err = w.Write(data); err != nil {
			return err
		}
		if err = w.Close(); err != nil {
			return err
		}
	case "zst":
		w, err := zstd.NewWriter(&out, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
		if err != nil {
			return err
		}
		if _, err = w.Write(data); err != nil {
			return err
		}
		if err = w.Close(); err != nil {
			return err
		}
	default:
		out.Write(data)
	}
	tmp, err := os.CreateTemp(filepath.Dir(name), "."+filepath.Base(name)+".*")
	if err != nil {
		return fmt.Errorf("WriteFile: %w", err)
	}
	defer func() {
		if err != nil {
			os.Remove(tmp.Name())
		}
	}()
	if _, err = tmp.Write(out.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("WriteFile: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("WriteFile: %w", err)
	}
	if err = os.Chmod(tmp.Name(), 0644); err != nil {
		return fmt.Errorf("WriteFile: %w", err)
	}
	if err = os.Rename(tmp.Name(), name); err != nil {
		return fmt.Errorf("WriteFile: %w", err)
	}
	return nil
}

func compression(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".gz":
		return "gz"
	case ".zst", ".zstd":
		return "zst"
	}
	return ""
}
