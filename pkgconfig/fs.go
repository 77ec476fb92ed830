/*
 Licensed under the Apache License, Version 2.0 (the "License");
 you may not use this file except in compliance with the License.
 You may obtain a copy of the License at

 http://www.apache.org/licenses/LICENSE-2.0

 Unless required by applicable law or agreed to in writing, software
 distributed under the License is distributed on an "AS IS" BASIS,
 WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 See the License for the specific language governing permissions and
 limitations under the License.
*/

package pkgconfig

import "os"

// FileSystem is the narrow collaborator the resolver needs: find out
// whether a candidate .pc path exists and is a regular file, and read one.
// Tests supply an in-memory implementation instead of touching disk.
type FileSystem interface {
	Stat(path string) (exists bool, isRegular bool, err error)
	ReadFile(path string) (string, error)
}

type osFileSystem struct{}

func (osFileSystem) Stat(path string) (bool, bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, false, nil
		}
		return false, false, err
	}
	return true, info.Mode().IsRegular(), nil
}

func (osFileSystem) ReadFile(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// DefaultFileSystem is the os-backed FileSystem NewFacade uses when none is
// supplied.
var DefaultFileSystem FileSystem = osFileSystem{}
