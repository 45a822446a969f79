package domain

import "sort"

// ItemMapping associates a legacy item identifier with its replacement,
// together with the item's display names in Spanish and English.
type ItemMapping struct {
	OldID  int    `json:"old_id"  yaml:"old_id"`
	NewID  int    `json:"new_id"  yaml:"new_id"`
	NameES string `json:"name_es" yaml:"name_es"`
	NameEN string `json:"name_en" yaml:"name_en"`
}

// Table is a lookup of item mappings keyed by the legacy identifier.
type Table map[int]ItemMapping

// EmbeddedTable returns the built-in mapping of support item IDs for
// Summoner's Rift 5v5. Source: "Objetos LOL.csv".
func EmbeddedTable() Table {
	entries := []ItemMapping{
		{OldID: 2065, NewID: 322065, NameES: "Canción de batalla de Shurelya", NameEN: "Shurelya's Battlesong"},
		{OldID: 3002, NewID: 323002, NameES: "Marcasendas", NameEN: "Trailblazer"},
		{OldID: 3003, NewID: 323003, NameES: "Bastón del arcángel", NameEN: "Archangel's Staff"},
		{OldID: 3004, NewID: 323004, NameES: "Manamune", NameEN: "Manamune"},
		{OldID: 3050, NewID: 323050, NameES: "Convergencia de Zeke", NameEN: "Zeke's Convergence"},
		{OldID: 3075, NewID: 323075, NameES: "Malla de espinas", NameEN: "Thornmail"},
		{OldID: 3107, NewID: 323107, NameES: "Redención", NameEN: "Redemption"},
		{OldID: 3109, NewID: 323109, NameES: "Promesa de caballero", NameEN: "Knight's Vow"},
		{OldID: 3110, NewID: 323110, NameES: "Corazón de hielo", NameEN: "Frozen Heart"},
		{OldID: 3119, NewID: 323119, NameES: "Llegada del invierno", NameEN: "Winter's Approach"},
		{OldID: 3190, NewID: 323190, NameES: "Medallón de los Solari de Hierro", NameEN: "Locket of the Iron Solari"},
		{OldID: 3222, NewID: 323222, NameES: "Bendición de Mikael", NameEN: "Mikael's Blessing"},
		{OldID: 3504, NewID: 323504, NameES: "Incensario ardiente", NameEN: "Ardent Censer"},
		{OldID: 4005, NewID: 324005, NameES: "Mandato imperial", NameEN: "Imperial Mandate"},
		{OldID: 6616, NewID: 326616, NameES: "Bastón de aguas fluidas", NameEN: "Staff of Flowing Water"},
		{OldID: 6617, NewID: 326617, NameES: "Renovación de piedra lunar", NameEN: "Moonstone Renewer"},
		{OldID: 6620, NewID: 326620, NameES: "Ecos de Helia", NameEN: "Echoes of Helia"},
		{OldID: 6621, NewID: 326621, NameES: "Núcleo albar", NameEN: "Dawncore"},
		{OldID: 6657, NewID: 326657, NameES: "Vara de las edades", NameEN: "Rod of Ages"},
		{OldID: 8020, NewID: 328020, NameES: "Máscara abisal", NameEN: "Abyssal Mask"},
	}

	table := make(Table, len(entries))
	for _, e := range entries {
		table[e.OldID] = e
	}
	return table
}

// Lookup returns the mapping for a legacy identifier, if any.
func (t Table) Lookup(oldID int) (ItemMapping, bool) {
	m, ok := t[oldID]
	return m, ok
}

// Merge returns a new table with extras overlaid on t. Extras with an
// already-known OldID replace the built-in entry.
func (t Table) Merge(extras []ItemMapping) Table {
	merged := make(Table, len(t)+len(extras))
	for id, m := range t {
		merged[id] = m
	}
	for _, e := range extras {
		merged[e.OldID] = e
	}
	return merged
}

// Entries returns all mappings ordered by OldID.
func (t Table) Entries() []ItemMapping {
	entries := make([]ItemMapping, 0, len(t))
	for _, m := range t {
		entries = append(entries, m)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].OldID < entries[j].OldID })
	return entries
}
