package adapter

// Query documents sent to the data-query endpoint. Every conditional part of
// a query travels in the variables payload; the documents themselves are
// fixed strings.
//
// searchRecipes binds the one $where variable in both the row selection and
// the aggregate count, which is what guarantees the count describes the same
// result set being paged.
const (
	searchRecipesQuery = `
		query SearchRecipes(
			$where: recipes_bool_exp!
			$order_by: [recipes_order_by!]
			$limit: Int!
			$offset: Int!
		) {
			recipes(
				where: $where
				order_by: $order_by
				limit: $limit
				offset: $offset
			) {
				id
				title
				description
				prep_time
				cook_time
				servings
				difficulty
				featured_image_url
				is_premium
				price
				created_at
				average_rating
				total_likes
				total_comments
				user {
					id
					username
					full_name
					avatar_url
				}
				category {
					id
					name
					slug
				}
			}

			recipes_aggregate(where: $where) {
				aggregate {
					count
				}
			}
		}`

	interactionRowsQuery = `
		query GetUserRecipeInteractions($user_id: uuid!, $recipe_id: uuid!) {
			likes(where: { user_id: { _eq: $user_id }, recipe_id: { _eq: $recipe_id } }) {
				id
			}
			bookmarks(where: { user_id: { _eq: $user_id }, recipe_id: { _eq: $recipe_id } }) {
				id
			}
			ratings(where: { user_id: { _eq: $user_id }, recipe_id: { _eq: $recipe_id } }) {
				id
				rating
			}
			purchases(where: { user_id: { _eq: $user_id }, recipe_id: { _eq: $recipe_id }, status: { _eq: "completed" } }) {
				id
			}
		}`

	suggestionsQuery = `
		query GetSearchSuggestions($search_query: String!) {
			recipes(
				where: {
					_and: [
						{ is_published: { _eq: true } }
						{ title: { _ilike: $search_query } }
					]
				}
				limit: 5
				order_by: { total_likes: desc }
			) {
				id
				title
				featured_image_url
			}

			recipe_ingredients(
				where: { name: { _ilike: $search_query } }
				distinct_on: name
				limit: 5
			) {
				name
			}

			categories(
				where: { name: { _ilike: $search_query } }
				limit: 3
			) {
				id
				name
				slug
			}
		}`

	popularSearchTermsQuery = `
		query GetPopularSearchTerms {
			search_logs(
				order_by: { count: desc }
				limit: 10
				where: { created_at: { _gte: "now() - interval '30 days'" } }
			) {
				search_term
				count
			}
		}`

	logSearchMutation = `
		mutation LogSearch($search_term: String!, $results_count: Int!) {
			insert_search_logs_one(
				object: {
					search_term: $search_term,
					results_count: $results_count
				}
				on_conflict: {
					constraint: search_logs_search_term_key,
					update_columns: [count, updated_at]
				}
			) {
				id
			}
		}`

	categoriesQuery = `
		query GetCategories {
			categories(order_by: { name: asc }) {
				id
				name
				slug
			}
		}`

	likeRecipeMutation = `
		mutation LikeRecipe($recipe_id: uuid!) {
			insert_likes_one(object: { recipe_id: $recipe_id }) {
				id
			}
		}`

	unlikeRecipeMutation = `
		mutation UnlikeRecipe($recipe_id: uuid!) {
			delete_likes(where: { recipe_id: { _eq: $recipe_id } }) {
				affected_rows
			}
		}`

	bookmarkRecipeMutation = `
		mutation BookmarkRecipe($recipe_id: uuid!) {
			insert_bookmarks_one(object: { recipe_id: $recipe_id }) {
				id
			}
		}`

	removeBookmarkMutation = `
		mutation RemoveBookmark($recipe_id: uuid!) {
			delete_bookmarks(where: { recipe_id: { _eq: $recipe_id } }) {
				affected_rows
			}
		}`

	rateRecipeMutation = `
		mutation RateRecipe($recipe_id: uuid!, $rating: numeric!) {
			insert_ratings_one(
				object: { recipe_id: $recipe_id, rating: $rating }
				on_conflict: {
					constraint: ratings_user_id_recipe_id_key,
					update_columns: [rating, updated_at]
				}
			) {
				id
			}
		}`
)
