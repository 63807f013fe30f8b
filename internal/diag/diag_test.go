/*
 * Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License").
 * You may not use this file except in compliance with the License.
 * A copy of the License is located at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * or in the "license" file accompanying this file. This file is distributed
 * on an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either
 * express or implied. See the License for the specific language governing
 * permissions and limitations under the License.
 */

package diag

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	cause := errors.New("unexpected character")

	err := Wrap("stdin", 42, cause)
	require.Error(t, err)
	assert.Equal(t, "stdin: offset 42: unexpected character", err.Error())
	assert.True(t, errors.Is(err, cause))
}

func TestWrapNil(t *testing.T) {
	assert.NoError(t, Wrap("stdin", 0, nil))
}
