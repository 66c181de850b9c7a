// Copyright ©2012 Dan Kortschak <dan.kortschak@adelaide.edu.au>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package rangetree

// deleteMin removes the left-most node from the subtree rooted at n,
// returning the rebalanced subtree and the removed node (detached, its
// children and parent links meaningless to the caller).
func deleteMin[V Cloner[V]](n *node[V]) (*node[V], *node[V]) {
	if n.left == nil {
		return nil, n
	}
	if colorOf(n.left) == black && colorOf(n.left.left) == black {
		n = moveRedLeft(n)
	}
	newLeft, removed := deleteMin(n.left)
	n.setLeft(newLeft)
	return fixUp(n), removed
}

// deleteMax is the mirror of deleteMin.
func deleteMax[V Cloner[V]](n *node[V]) (*node[V], *node[V]) {
	if colorOf(n.left) == red {
		n = rotateRight(n)
	}
	if n.right == nil {
		return nil, n
	}
	if colorOf(n.right) == black && colorOf(n.right.left) == black {
		n = moveRedRight(n)
	}
	newRight, removed := deleteMax(n.right)
	n.setRight(newRight)
	return fixUp(n), removed
}

// deleteExact removes the node with key exactly equal to key, if any,
// returning the rebalanced subtree and the removed node (key/val only —
// see the splice comment below for why its identity is synthetic).
func deleteExact[V Cloner[V]](n *node[V], key Range) (*node[V], *node[V]) {
	if n == nil {
		return nil, nil
	}

	if key.Compare(n.key) < 0 {
		if n.left != nil {
			if colorOf(n.left) == black && colorOf(n.left.left) == black {
				n = moveRedLeft(n)
			}
			newLeft, removed := deleteExact(n.left, key)
			n.setLeft(newLeft)
			return fixUp(n), removed
		}
		return fixUp(n), nil
	}

	if colorOf(n.left) == red {
		n = rotateRight(n)
	}
	if key.Compare(n.key) == 0 && n.right == nil {
		return nil, n
	}
	if n.right != nil {
		if colorOf(n.right) == black && colorOf(n.right.left) == black {
			n = moveRedRight(n)
		}
		if key.Compare(n.key) == 0 {
			// The target has a right child: splice in its in-order
			// successor. n keeps its own color, parent, is_right_child
			// and subtree position; only its key/val are overwritten
			// with the successor's, and the successor's old slot is
			// physically removed via deleteMin. What we hand back to
			// the caller as "the removed node" is a detached node
			// carrying the target's original key/val, since that is
			// what the caller asked to delete.
			origKey, origVal := n.key, n.val
			newRight, successor := deleteMin(n.right)
			n.key, n.val = successor.key, successor.val
			n.setRight(newRight)
			return fixUp(n), &node[V]{key: origKey, val: origVal}
		}
		newRight, removed := deleteExact(n.right, key)
		n.setRight(newRight)
		return fixUp(n), removed
	}
	return fixUp(n), nil
}
