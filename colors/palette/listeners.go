// Copyright (c) 2025, Hueforge Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

// Listeners registers scheme change listener functions keyed by
// subscriber name. Listeners are closure methods with all context
// captured, registered by the objects that react to palette changes.
type Listeners map[string]func(sc Scheme)

// Init ensures that the map is constructed.
func (ls *Listeners) Init() {
	if *ls != nil {
		return
	}
	*ls = make(map[string]func(Scheme))
}

// Add adds a function under the given subscriber name, replacing any
// function previously registered under the same name.
func (ls *Listeners) Add(name string, fun func(Scheme)) {
	ls.Init()
	(*ls)[name] = fun
}

// Delete removes the function registered under the given name, if any.
func (ls *Listeners) Delete(name string) {
	if *ls == nil {
		return
	}
	delete(*ls, name)
}

// Call calls all registered functions with the given scheme,
// synchronously and in unspecified order.
func (ls *Listeners) Call(sc Scheme) {
	for _, fun := range *ls {
		fun(sc)
	}
}
