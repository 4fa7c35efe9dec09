/*
 * Copyright 2024 The Structz Authors. All rights reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package structz_test

import (
	"fmt"

	"github.com/NichtsHsu/structz/stringz"
	"github.com/NichtsHsu/structz/structz"
)

func Example() {
	person := structz.Must(
		structz.F("name", "John Doe"),
		structz.F("age", 26),
		structz.F("tags", []string{"developer", "rustacean"}),
	)

	name, _ := structz.Get[string](person, stringz.Encode("name"))
	fmt.Println(name)

	age, _ := structz.Mut[int](person, stringz.Encode("age"))
	*age++
	fmt.Println(person)

	tags, _ := structz.Take[[]string](person, stringz.Encode("tags"))
	fmt.Println(tags, person.Consumed())

	// Output:
	// John Doe
	// {age: 27, name: John Doe, tags: [developer rustacean]}
	// [developer rustacean] true
}

func ExampleRecord_Shape() {
	rect1 := structz.Must(structz.F("width", 1920), structz.F("height", 1080))
	rect2 := structz.Must(structz.F("height", 1080), structz.F("width", 1920))

	fmt.Println(rect1.Shape() == rect2.Shape())
	fmt.Println(structz.Equal(rect1, rect2))
	fmt.Println(rect1.Shape())

	// Output:
	// true
	// true
	// {height: int, width: int}
}

func ExampleSubseq() {
	alice := structz.Must(
		structz.F("jobs", "programmer"),
		structz.F("name", "Alice"),
		structz.F("age", 30),
		structz.F("children", []string{"Bob"}),
	)

	sub, _ := structz.Subseq(alice, stringz.Encode("name"), stringz.Encode("age"))
	fmt.Println(sub)

	// Output:
	// {age: 30, name: Alice}
}
