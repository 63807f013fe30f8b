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

// Package iontok implements the lexical scanner for Ion text: given a byte
// stream it classifies the next token and leaves the token's payload bytes
// available for a value reader layered above. It does not parse values,
// resolve symbol tables, or decode anything beyond single bytes; those are
// the responsibility of a reader built on top of this package.
package iontok
