// Package view derives new fixation tables from existing ones.
//
// Two operations are provided:
//
//   - Filter keeps the rows selected by a boolean mask, in their original
//     relative order. Masks are plain []bool; the builders in mask.go (Equal,
//     In, Range, Where, And, Or, Not) produce them from field values.
//   - GroupBy partitions a table by the distinct values of one field and
//     yields one sub-table per value as a lazy iter.Seq2. Groups arrive in
//     first-occurrence order by default; WithSortedOrder switches to
//     ascending values. GroupByCategory and GroupByImage are GroupBy over
//     the "category" and "filenumber" fields.
//
// The source table is never modified and no result aliases mutable state of
// the source.
//
//	mask, _ := view.Range(t, "start", 0, 500)
//	early, _ := view.Filter(t, mask)
//	groups, _ := view.GroupByCategory(early)
//	for sub, cat := range groups {
//		fmt.Println(cat, sub.Len())
//	}
package view
